// Command demosite starts the fixture storefronts used to exercise the
// inspection pipeline against a local target.
// Usage: go run ./cmd/demosite [port]
// Default port: 9999
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"trustlens/internal/demosite"
)

func main() {
	cfg := demosite.DefaultConfig()

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.Port = port
	}

	fmt.Println("TrustLens demo storefronts")
	fmt.Println("  /       - storefront full of counterfeit-sale phrases")
	fmt.Println("  /clean  - storefront that reads like a legitimate shop")
	fmt.Println()

	site := demosite.NewDemoSite(cfg)
	if err := site.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
