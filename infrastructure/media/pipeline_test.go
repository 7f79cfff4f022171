package media

import (
	"bytes"
	"image"
	"image/color"
	"regexp"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nameFormat = regexp.MustCompile(`^\d{13}-[0-9a-z]{6}\.jpg$`)

// encodeTestImage renders a solid image of the given size as JPEG bytes.
func encodeTestImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 120, G: 80, B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()

	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestPipeline_Prepare_DownscalesLandscape(t *testing.T) {
	// Arrange: 2000x1000, longer edge over the bound
	pipeline := NewPipeline()
	input := encodeTestImage(t, 2000, 1000)

	// Act
	prepared, err := pipeline.Prepare(input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1200, prepared.Width)
	assert.Equal(t, 600, prepared.Height)
	assert.Equal(t, "image/jpeg", prepared.ContentType)

	width, height := decodeSize(t, prepared.Data)
	assert.Equal(t, 1200, width)
	assert.Equal(t, 600, height)
}

func TestPipeline_Prepare_DownscalesPortrait(t *testing.T) {
	// Arrange
	pipeline := NewPipeline()
	input := encodeTestImage(t, 900, 1800)

	// Act
	prepared, err := pipeline.Prepare(input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1200, prepared.Height, "longer edge must equal the bound")
	assert.Equal(t, 600, prepared.Width, "aspect ratio must be preserved")
}

func TestPipeline_Prepare_KeepsSmallImagesUnchanged(t *testing.T) {
	// Arrange: both edges within the bound
	pipeline := NewPipeline()
	input := encodeTestImage(t, 800, 600)

	// Act
	prepared, err := pipeline.Prepare(input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 800, prepared.Width)
	assert.Equal(t, 600, prepared.Height)
}

func TestPipeline_Prepare_BoundaryDimensionUntouched(t *testing.T) {
	// Arrange: exactly at the bound
	pipeline := NewPipeline()
	input := encodeTestImage(t, 1200, 300)

	// Act
	prepared, err := pipeline.Prepare(input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1200, prepared.Width)
	assert.Equal(t, 300, prepared.Height)
}

func TestPipeline_Prepare_RejectsGarbage(t *testing.T) {
	// Arrange
	pipeline := NewPipeline()

	// Act
	_, err := pipeline.Prepare([]byte("not an image at all"))

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestGenerateName_Format(t *testing.T) {
	name := GenerateName()
	assert.Regexp(t, nameFormat, name)
}

func TestGenerateName_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[GenerateName()] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "names generated in a burst must differ")
}
