package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService prepares cover art for embedding in MP3 files.
//
// Bandcamp serves artwork as large JPEG or PNG files. Players choke on
// oversized embedded pictures, so covers are downscaled to a bounding
// square and re-encoded as JPEG before they go into an APIC frame.
//
// Example usage:
//
//	svc := NewImageService()
//
//	// Download cover art
//	imageData, _ := client.DownloadBytes(ctx, artworkURL)
//
//	// Fit within 1000x1000 and convert to JPEG
//	cover, _ := svc.PrepareCover(ctx, imageData, 1000)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// PrepareCover fits an image within a maxDim bounding square and returns
// it as JPEG-encoded bytes.
//
// The aspect ratio is preserved. Images already within the bound are not
// resized but are still re-encoded as JPEG, so the caller always gets a
// consistent format for ID3 embedding. A maxDim of zero or less disables
// the downscale and only converts.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused)
//   - data: Original image data (JPEG or PNG)
//   - maxDim: Maximum width and height in pixels
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	cover, err := svc.PrepareCover(ctx, imageData, 1000)
//	// A 1500x1000 image becomes 1000x667
//	// An 800x600 image stays 800x600 (but re-encoded)
func (s *ImageService) PrepareCover(ctx context.Context, data []byte, maxDim int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxDim > 0 && (width > maxDim || height > maxDim) {
		// Scale the longer side down to maxDim, keeping the aspect ratio
		ratio := float64(width) / float64(height)
		if ratio > 1 {
			width = maxDim
			height = int(float64(maxDim) / ratio)
		} else {
			height = maxDim
			width = int(float64(maxDim) * ratio)
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
