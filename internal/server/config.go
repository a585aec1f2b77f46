package server

import (
	"trustlens/internal/inspector"
	"trustlens/internal/interfaces"
	"trustlens/internal/webclient"
)

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// Client configures the shared web client used by the pipeline.
	Client webclient.Config

	// Inspector configures the pipeline itself; nil means defaults.
	Inspector *inspector.Config

	// Logger receives request and handler logs; nil means a stdout logger.
	Logger interfaces.Logger
}

func DefaultConfig() Config {
	return Config{
		ListenAddr: ":8080",
		Client:     webclient.DefaultConfig(),
		Inspector:  inspector.DefaultConfig(),
	}
}
