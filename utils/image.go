package utils

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// ToJPEG decodes an image in any registered format and re-encodes it as JPEG,
// downscaling so that neither side exceeds maxDim. The face recognizer only
// consumes JPEG data, so every image goes through here first.
// Already-small JPEG input is returned unchanged.
func ToJPEG(maxDim uint, data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	size := img.Bounds().Size()
	small := uint(size.X) <= maxDim && uint(size.Y) <= maxDim
	if format == "jpeg" && small {
		return data, nil
	}
	out := img
	if !small {
		out = resize.Thumbnail(maxDim, maxDim, img, resize.Lanczos3)
	}
	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, out, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
