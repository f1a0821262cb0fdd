package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-playground/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for the invoice playground.

The API provides endpoints for:
  - POST /api/v1/generate             - Generate a PDF invoice
  - POST /api/v1/validate             - Validate an invoice (?strict=true for strict rules)
  - POST /api/v1/preview              - Render an HTML preview
  - POST /api/v1/export/:format       - Export as pdf, html, json or csv
  - POST /api/v1/batch                - Generate a batch of invoices
  - GET  /api/v1/presets              - List the built-in presets
  - POST /api/v1/presets/:key/generate - Generate a preset invoice
  - GET  /health                      - Health check

Examples:
  # Start server on default port
  invoice-playground serve

  # Start on custom port with built-in plugins
  invoice-playground serve --address :8080 --plugins

  # Start in debug mode
  invoice-playground serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 2*time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
		UsePlugins:   usePlugins,
		Defaults:     defaultOptions(),
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", serverAddr)
	if usePlugins {
		fmt.Println("Built-in plugins enabled")
	} else {
		fmt.Println("Built-in plugins disabled")
	}

	return srv.Run()
}
