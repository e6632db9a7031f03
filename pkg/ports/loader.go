package ports

import (
	"context"
	"image"
)

// ImageLoader decodes the image stored at location. It blocks until the
// image is decoded, ctx is done, or decoding fails.
type ImageLoader interface {
	Load(ctx context.Context, location string) (image.Image, error)
}

// Placeholder generates a stand-in background for a template whose image
// could not be decoded. It never fails.
type Placeholder interface {
	Generate(name string, width, height int) image.Image
}
