// Command server starts the TrustLens HTTP API and web form.
// Usage: go run ./cmd/server [-addr :8080] [-config config.yaml]
package main

import (
	"flag"
	"log"

	"trustlens/internal/config"
	"trustlens/internal/interfaces"
	"trustlens/internal/logging"
	"trustlens/internal/server"
	"trustlens/internal/webclient"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides config file)")
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	logger := logging.NewStdoutLogger("Server")

	var fileCfg *config.Config
	if *configPath != "" {
		var err error
		fileCfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	webclient.RegisterDefaultBackends()

	cfg := server.Config{
		ListenAddr: fileCfg.ListenAddr(),
		Client:     fileCfg.WebClientConfig(),
		Inspector:  fileCfg.InspectorConfig(),
		Logger:     logger,
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	s, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("creating server: %v", err)
	}
	defer s.Close()

	httpServer := s.HTTPServer()
	logger.Info("listening", interfaces.Field{Key: "addr", Value: cfg.ListenAddr})
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
