package parser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/ttpr0/go-navigation/util"
)

//*******************************************
// dataset output
//*******************************************

type DatasetFiles struct {
	Locations string
	Roads     string
	Landmarks string
}

type DatasetMeta struct {
	Source    string `json:"source"`
	Nodes     int    `json:"nodes"`
	Roads     int    `json:"roads"`
	Landmarks int    `json:"landmarks"`
}

// Writes the dataset as the whitespace separated text files read by the
// graph and landmark loaders, plus a meta.json next to the locations file.
func WriteDataset(ds *Dataset, files DatasetFiles, source string) error {
	err := _WriteLines(files.Locations, ds.Nodes.Length(), func(w *bufio.Writer, i int) {
		fmt.Fprintf(w, "%d\n", i)
	})
	if err != nil {
		return err
	}
	err = _WriteLines(files.Roads, ds.Roads.Length(), func(w *bufio.Writer, i int) {
		road := ds.Roads[i]
		fmt.Fprintf(w, "%d %d %d\n", road.NodeA, road.NodeB, road.Length)
	})
	if err != nil {
		return err
	}
	err = _WriteLines(files.Landmarks, ds.Landmarks.Length(), func(w *bufio.Writer, i int) {
		landmark := ds.Landmarks[i]
		fmt.Fprintf(w, "%s %d\n", landmark.Name, landmark.Node)
	})
	if err != nil {
		return err
	}
	meta := DatasetMeta{
		Source:    source,
		Nodes:     ds.Nodes.Length(),
		Roads:     ds.Roads.Length(),
		Landmarks: ds.Landmarks.Length(),
	}
	return WriteJSONToFile(meta, filepath.Join(filepath.Dir(files.Locations), "meta.json"))
}

func _WriteLines(file string, count int, write func(*bufio.Writer, int)) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < count; i++ {
		write(w, i)
	}
	return w.Flush()
}
