// Package logo converts header logo image files to embeddable inline data.
package logo

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// DataURL reads an image file and returns it as a data URL for inline
// embedding in the rendered header. The content type is sniffed from the
// bytes; no size or format validation is applied, matching the permissive
// handling of uploaded logos.
func DataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read logo file %s: %w", path, err)
	}

	mimeType := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
