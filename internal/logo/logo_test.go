package logo

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the 8-byte PNG signature padded with enough bytes for sniffing.
var pngHeader = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 16)...)

func TestDataURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o644))

	url, err := DataURL(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"), url)

	encoded := strings.TrimPrefix(url, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, decoded)
}

func TestDataURL_MissingFile(t *testing.T) {
	_, err := DataURL(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestDataURL_UnknownBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02}, 0o644))

	url, err := DataURL(path)
	require.NoError(t, err, "no type validation is applied")
	assert.True(t, strings.HasPrefix(url, "data:application/octet-stream;base64,"))
}
