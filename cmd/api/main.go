package main

import (
	"fmt"
	"os"

	_ "marketplace_trust/docs"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var Version = "dev"

// @title           Marketplace Trust API
// @version         1.0
// @description     Escrow custody, dispute mediation and fraud scoring for the service marketplace.

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-ID
// @description Id of the user already authenticated by the calling service.

func main() {
	rootCmd := &cobra.Command{
		Use:           "trustd",
		Short:         "Escrow, dispute and fraud-scoring service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(dispatchCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
