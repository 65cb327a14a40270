package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort    int
	serveCatalog catalogFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes profile extraction, matching and catalog lookup endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	serveCatalog.register(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	matcher, err := newMatcher(cmd.Context(), serveCatalog, "", 0)
	if err != nil {
		return err
	}

	port := servePort
	if port <= 0 {
		port = appConfig.Port
	}

	return server.New(server.Config{Port: port}, matcher, appLogger).Start()
}
