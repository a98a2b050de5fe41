package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pratama/kisi-kisi-generator/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render generated content into a printable page",
	Long:  "Render a previously generated content JSON file into a printable HTML page, optionally printed to PDF through headless Chrome.",
	RunE:  runRender,
}

var (
	renderContentFile string
	renderFormFile    string
	renderOutputFile  string
	renderLeftLogo    string
	renderRightLogo   string
	renderPDF         bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderContentFile, "content", "i", "", "Path to generated content JSON file (required)")
	renderCmd.Flags().StringVarP(&renderFormFile, "form", "f", "", "Path to form JSON file (defaults to the built-in form)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "kisi-kisi.html", "Path to output file")
	renderCmd.Flags().StringVar(&renderLeftLogo, "left-logo", "", "Path to the left header logo image")
	renderCmd.Flags().StringVar(&renderRightLogo, "right-logo", "", "Path to the right header logo image")
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "Print the page to PDF instead of writing HTML")
	_ = renderCmd.MarkFlagRequired("content")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	content, err := loadContent(renderContentFile)
	if err != nil {
		return err
	}

	form, err := loadForm(renderFormFile, renderLeftLogo, renderRightLogo)
	if err != nil {
		return err
	}

	html, err := rendering.RenderHTML(content, form)
	if err != nil {
		return err
	}

	out := []byte(html)
	if renderPDF {
		out, err = rendering.PrintToPDF(context.Background(), html)
		if err != nil {
			return err
		}
		if renderOutputFile == "kisi-kisi.html" {
			renderOutputFile = "kisi-kisi.pdf"
		}
	}

	if err := os.WriteFile(renderOutputFile, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)

	return nil
}
