package storage_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clientes-api/internal/storage"
)

func TestInspectPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 12, 7))))

	info, err := storage.Inspect(&buf)
	require.NoError(t, err)
	assert.Equal(t, storage.ImageInfo{Format: "png", Width: 12, Height: 7}, info)
}

func TestInspectNotAnImage(t *testing.T) {
	_, err := storage.Inspect(bytes.NewBufferString("plain text"))
	assert.Error(t, err)
}
