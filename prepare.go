package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ttpr0/go-navigation/parser"
	"golang.org/x/exp/slog"
)

var ErrNoExtract = errors.New("no osm extract configured")

// Converts the configured OSM extract into the text files served by the
// navigator. Existing files are overwritten.
func PrepareDataset(config Config) error {
	if config.Generate.OSM == "" {
		return ErrNoExtract
	}
	slog.Info("Parsing osm extract " + config.Generate.OSM)
	ds, err := parser.ParseDataset(config.Generate.OSM, &parser.DrivingDecoder{})
	if err != nil {
		return fmt.Errorf("parse %s: %w", config.Generate.OSM, err)
	}
	files := parser.DatasetFiles{
		Locations: config.Data.Locations,
		Roads:     config.Data.Roads,
		Landmarks: config.Data.Landmarks,
	}
	for _, file := range []string{files.Locations, files.Roads, files.Landmarks} {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return err
		}
	}
	if err := parser.WriteDataset(ds, files, config.Generate.OSM); err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("wrote %v nodes, %v roads, %v landmarks", ds.Nodes.Length(), ds.Roads.Length(), ds.Landmarks.Length()))
	return nil
}
