package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmaydwell1/eliteprep/internal/config"
	"github.com/jmaydwell1/eliteprep/internal/gateway"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:          "eliteprep",
	Short:        "Elite Prep - mental performance companion for competitive golfers",
	Long:         "Onboard, check in, review readiness, and log practice sessions against the Elite Prep backend.",
	Version:      Version,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newGateway builds the backend client from loaded configuration.
func newGateway(cfg *config.Config) *gateway.Client {
	return gateway.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.Timeout))
}
