package demosite

type Config struct {
	// Port is the TCP port the storefront listens on.
	Port int
}

func DefaultConfig() Config {
	return Config{Port: 9999}
}
