package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pratama/kisi-kisi-generator/internal/logo"
	"github.com/pratama/kisi-kisi-generator/internal/types"
)

// loadForm reads a form JSON file, or returns the default form when path is
// empty. Logo paths, when given, are converted to inline data URLs.
func loadForm(path, leftLogoPath, rightLogoPath string) (types.FormData, error) {
	form := types.DefaultFormData()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return form, fmt.Errorf("failed to read form file: %w", err)
		}
		if err := json.Unmarshal(data, &form); err != nil {
			return form, fmt.Errorf("failed to parse form JSON: %w", err)
		}
	}

	if leftLogoPath != "" {
		url, err := logo.DataURL(leftLogoPath)
		if err != nil {
			return form, err
		}
		form.LeftLogo = url
	}
	if rightLogoPath != "" {
		url, err := logo.DataURL(rightLogoPath)
		if err != nil {
			return form, err
		}
		form.RightLogo = url
	}

	if err := form.Validate(); err != nil {
		return form, fmt.Errorf("invalid form: %w", err)
	}

	return form, nil
}

// loadContent reads a previously generated content JSON file.
func loadContent(path string) (*types.GeneratedContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	var content types.GeneratedContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse content JSON: %w", err)
	}

	return &content, nil
}

// resolveAPIKey picks the API key from flag, then environment.
func resolveAPIKey(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
}
