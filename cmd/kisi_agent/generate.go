package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pratama/kisi-kisi-generator/internal/config"
	"github.com/pratama/kisi-kisi-generator/internal/export"
	"github.com/pratama/kisi-kisi-generator/internal/generation"
	"github.com/pratama/kisi-kisi-generator/internal/llm"
	"github.com/pratama/kisi-kisi-generator/internal/observability"
	"github.com/pratama/kisi-kisi-generator/internal/rendering"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate exam content from an input specification",
	Long:  "Generate an exam blueprint, student worksheet, and answer key from a form JSON file, then write the content JSON, a printable HTML page, and an xlsx workbook to the output directory.",
	RunE:  runGenerate,
}

var (
	generateFormFile   string
	generateOutputDir  string
	generateAPIKey     string
	generateModel      string
	generateConfigFile string
	generateLeftLogo   string
	generateRightLogo  string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateFormFile, "form", "f", "", "Path to form JSON file (defaults to the built-in form)")
	generateCmd.Flags().StringVarP(&generateOutputDir, "out", "o", ".", "Directory for generated artifacts")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Override the generation model")
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to config JSON file")
	generateCmd.Flags().StringVar(&generateLeftLogo, "left-logo", "", "Path to the left header logo image")
	generateCmd.Flags().StringVar(&generateRightLogo, "right-logo", "", "Path to the right header logo image")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	flags := config.Config{
		APIKey:    generateAPIKey,
		Model:     generateModel,
		OutputDir: generateOutputDir,
		LeftLogo:  generateLeftLogo,
		RightLogo: generateRightLogo,
		Verbose:   generateVerbose,
	}

	cfg := flags
	if generateConfigFile != "" {
		fileCfg, err := config.LoadConfig(generateConfigFile)
		if err != nil {
			return err
		}
		cfg = flags.MergeWithDefaults(*fileCfg)
		cfg.Verbose = generateVerbose || fileCfg.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(cfg.APIKey)
	if err != nil {
		return err
	}

	form, err := loadForm(generateFormFile, cfg.LeftLogo, cfg.RightLogo)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintFormData(&form)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stdout sync failure at exit

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	content, err := generation.New(client, logger).Generate(ctx, form)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintContentSummary(content)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Content JSON
	jsonBytes, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal content JSON: %w", err)
	}
	contentPath := filepath.Join(cfg.OutputDir, "content.json")
	if err := os.WriteFile(contentPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write content JSON: %w", err)
	}

	// Printable HTML page
	html, err := rendering.RenderHTML(content, form)
	if err != nil {
		return err
	}
	htmlPath := filepath.Join(cfg.OutputDir, "kisi-kisi.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML page: %w", err)
	}

	// Spreadsheet workbook
	xlsxPath, err := export.WriteFile(content, form, cfg.OutputDir)
	if err != nil {
		return err
	}

	logger.Info("artifacts written",
		zap.String("content", contentPath),
		zap.String("html", htmlPath),
		zap.String("xlsx", xlsxPath))

	_, _ = fmt.Fprintf(os.Stdout, "Successfully generated exam content\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", contentPath)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", htmlPath)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", xlsxPath)

	return nil
}

// newLogger builds the process logger. Verbose mode uses the development
// preset; otherwise only warnings and errors reach stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
