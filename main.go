package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

func main() {
	config_file := flag.String("config", "./config.yaml", "path to a yaml or toml config file")
	generate := flag.Bool("generate", false, "build the text dataset from the configured osm extract and exit")
	flag.Parse()

	config := DefaultConfig()
	if FileExists(*config_file) {
		c, err := ReadConfig(*config_file)
		if err != nil {
			slog.Error("invalid config: " + err.Error())
			os.Exit(1)
		}
		config = c
	} else {
		slog.Warn("config file " + *config_file + " not found, using defaults")
	}
	SetupLogging(os.Stdout, config.Logging.Level)

	if *generate {
		if err := PrepareDataset(config); err != nil {
			slog.Error("dataset generation failed: " + err.Error())
			os.Exit(1)
		}
		return
	}

	manager, err := NewNavigationManager(config)
	if err != nil {
		slog.Error("failed to load road network: " + err.Error())
		os.Exit(1)
	}

	app := NewRouter(manager)
	slog.Info("Starting server on " + config.Server.Address)
	if err := http.ListenAndServe(config.Server.Address, app); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func NewRouter(manager *NavigationManager) *mux.Router {
	options := manager.GetConfig().Server
	app := mux.NewRouter()
	app.Use(RequestIDMiddleware)
	app.Use(RateLimitMiddleware(rate.NewLimiter(rate.Limit(options.RateLimit), options.Burst)))
	MapRoutes(app, manager)
	return app
}
