package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env into the process environment. The -port and -grpc-port
// flags win over both .env and the inherited environment.
func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	var portFlag, grpcPortFlag string
	flag.StringVar(&portFlag, "port", "", "HTTP port (overrides PORT)")
	flag.StringVar(&grpcPortFlag, "grpc-port", "", "gRPC port (overrides GRPC_PORT)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":      portFlag,
		"GRPC_PORT": grpcPortFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
