package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pratama/kisi-kisi-generator/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export generated content to an xlsx workbook",
	Long:  "Export a previously generated content JSON file to a three-sheet xlsx workbook named after the form's subject and grade.",
	RunE:  runExport,
}

var (
	exportContentFile string
	exportFormFile    string
	exportOutputDir   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportContentFile, "content", "i", "", "Path to generated content JSON file (required)")
	exportCmd.Flags().StringVarP(&exportFormFile, "form", "f", "", "Path to form JSON file (defaults to the built-in form)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out", "o", ".", "Directory for the workbook")
	_ = exportCmd.MarkFlagRequired("content")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	content, err := loadContent(exportContentFile)
	if err != nil {
		return err
	}

	form, err := loadForm(exportFormFile, "", "")
	if err != nil {
		return err
	}

	path, err := export.WriteFile(content, form, exportOutputDir)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)

	return nil
}
