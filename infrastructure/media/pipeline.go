// Package media prepares user-supplied photos for object storage.
package media

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/MauGud/amanda-project/application/ports"
)

const (
	// maxDimension bounds the longer edge of every stored photo.
	maxDimension = 1200
	// jpegQuality is the fixed re-encode quality factor.
	jpegQuality = 70

	suffixLength  = 6
	base36Charset = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Pipeline decodes an arbitrary raster image, downscales it so the longer
// edge fits within a fixed bound while preserving aspect ratio, and
// re-encodes it as JPEG. Images already within bounds keep their
// dimensions.
type Pipeline struct {
	maxDimension int
	quality      int
}

// NewPipeline creates a pipeline with the production bounds.
func NewPipeline() *Pipeline {
	return &Pipeline{
		maxDimension: maxDimension,
		quality:      jpegQuality,
	}
}

// Prepare converts raw image bytes into an upload-ready JPEG payload with a
// generated name. A decode or encode failure rejects the whole submission;
// the caller must abort instead of uploading a partial result.
func (p *Pipeline) Prepare(data []byte) (ports.PreparedImage, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return ports.PreparedImage{}, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := p.targetSize(bounds.Dx(), bounds.Dy())
	if width != bounds.Dx() || height != bounds.Dy() {
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return ports.PreparedImage{}, fmt.Errorf("failed to encode image: %w", err)
	}

	return ports.PreparedImage{
		Data:        buf.Bytes(),
		Name:        GenerateName(),
		ContentType: "image/jpeg",
		Width:       width,
		Height:      height,
	}, nil
}

// targetSize scales the longer edge down to the bound, preserving aspect
// ratio. Dimensions already within the bound are returned unchanged.
func (p *Pipeline) targetSize(width, height int) (int, int) {
	if width <= p.maxDimension && height <= p.maxDimension {
		return width, height
	}

	if width > height {
		return p.maxDimension, height * p.maxDimension / width
	}
	return width * p.maxDimension / height, p.maxDimension
}

// GenerateName produces a storage object name unique with overwhelming
// probability: millisecond timestamp plus a random base36 suffix. There is
// no collision-detection retry.
func GenerateName() string {
	var suffix strings.Builder
	for i := 0; i < suffixLength; i++ {
		suffix.WriteByte(base36Charset[rand.Intn(len(base36Charset))])
	}
	return fmt.Sprintf("%d-%s.jpg", time.Now().UnixMilli(), suffix.String())
}
