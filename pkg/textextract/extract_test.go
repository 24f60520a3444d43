package textextract

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTXT(t *testing.T) {
	data := []byte("  Hello world!\nA second line.\n")
	reader := bytes.NewReader(data)

	result, err := Extract(reader, int64(len(data)), "txt")
	require.NoError(t, err)
	assert.Equal(t, "Hello world!\nA second line.", result.Content)
	assert.Equal(t, 1, result.Pages)
	assert.Equal(t, "txt", result.Metadata["type"])
}

func TestExtractTXTContentType(t *testing.T) {
	data := []byte("plain body")
	reader := bytes.NewReader(data)

	result, err := Extract(reader, int64(len(data)), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "plain body", result.Content)
}

func TestExtractUnsupportedType(t *testing.T) {
	data := []byte("whatever")
	reader := bytes.NewReader(data)

	_, err := Extract(reader, int64(len(data)), ".docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestSupportedTypes(t *testing.T) {
	assert.Equal(t, []string{".pdf", ".txt"}, SupportedTypes())
}
