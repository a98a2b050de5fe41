package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pratama/kisi-kisi-generator/internal/controller"
	"github.com/pratama/kisi-kisi-generator/internal/generation"
	"github.com/pratama/kisi-kisi-generator/internal/llm"
	"github.com/pratama/kisi-kisi-generator/internal/server"
)

var (
	servePort  int
	serveModel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing the form, generating exam content, and downloading printable and xlsx exports.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Override the generation model")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	apiKey, err := resolveAPIKey("")
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure at exit

	client, err := llm.NewClient(context.Background(), llm.DefaultConfig().WithModel(serveModel), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	ctrl := controller.New(generation.New(client, logger))

	srv := server.New(server.Config{Port: servePort}, ctrl, logger)

	return srv.Start()
}
