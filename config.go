package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

// Reads a yaml config, files ending in .toml are read as toml.
// Missing values are filled with defaults.
func ReadConfig(file string) (Config, error) {
	slog.Info("Reading config file " + file)
	config := DefaultConfig()
	data, err := os.ReadFile(file)
	if err != nil {
		return config, err
	}
	if strings.EqualFold(filepath.Ext(file), ".toml") {
		err = toml.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return config, err
	}
	config.applyDefaults()
	return config, config.Validate()
}

type Config struct {
	Data     DataOptions     `yaml:"data" toml:"data"`
	Server   ServerOptions   `yaml:"server" toml:"server"`
	Logging  LoggingOptions  `yaml:"logging" toml:"logging"`
	Generate GenerateOptions `yaml:"generate" toml:"generate"`
}

type DataOptions struct {
	Locations string `yaml:"locations" toml:"locations"`
	Roads     string `yaml:"roads" toml:"roads"`
	Landmarks string `yaml:"landmarks" toml:"landmarks"`
}

type ServerOptions struct {
	Address   string  `yaml:"address" toml:"address"`
	RateLimit float64 `yaml:"rate-limit" toml:"rate-limit"`
	Burst     int     `yaml:"burst" toml:"burst"`
	PageSize  int     `yaml:"page-size" toml:"page-size"`
	MaxMatrix int     `yaml:"max-matrix" toml:"max-matrix"`
}

type LoggingOptions struct {
	Level LogLevel `yaml:"level" toml:"level"`
}

type GenerateOptions struct {
	OSM string `yaml:"osm" toml:"osm"`
}

func DefaultConfig() Config {
	config := Config{}
	config.applyDefaults()
	return config
}

func (self *Config) applyDefaults() {
	if self.Data.Locations == "" {
		self.Data.Locations = "./text_files/locations.txt"
	}
	if self.Data.Roads == "" {
		self.Data.Roads = "./text_files/roads.txt"
	}
	if self.Data.Landmarks == "" {
		self.Data.Landmarks = "./text_files/landmarks.txt"
	}
	if self.Server.Address == "" {
		self.Server.Address = ":5002"
	}
	if self.Server.RateLimit == 0 {
		self.Server.RateLimit = 50
	}
	if self.Server.Burst == 0 {
		self.Server.Burst = 100
	}
	if self.Server.PageSize == 0 {
		self.Server.PageSize = 20
	}
	if self.Server.MaxMatrix == 0 {
		self.Server.MaxMatrix = 10000
	}
}

func (self Config) Validate() error {
	if self.Server.RateLimit < 0 {
		return errors.New("server.rate-limit must not be negative")
	}
	if self.Server.Burst < 0 {
		return errors.New("server.burst must not be negative")
	}
	if self.Server.PageSize < 0 {
		return errors.New("server.page-size must not be negative")
	}
	if self.Server.MaxMatrix < 0 {
		return errors.New("server.max-matrix must not be negative")
	}
	return nil
}

//**********************************************************
// enums
//**********************************************************

type LogLevel byte

const (
	INFO  LogLevel = 0
	DEBUG LogLevel = 1
	WARN  LogLevel = 2
	ERROR LogLevel = 3
)

func (self LogLevel) String() string {
	switch self {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	default:
		panic("unknown log level")
	}
}
func (self LogLevel) Level() slog.Level {
	switch self {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
func (self LogLevel) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	typ, err := LogLevelFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}
func (self LogLevel) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}
func (self *LogLevel) UnmarshalText(data []byte) error {
	typ, err := LogLevelFromString(string(data))
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func LogLevelFromString(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, errors.New("unknown log level")
	}
}
