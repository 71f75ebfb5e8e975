package video

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/nfnt/resize"
)

// FrameFromBase64 decodes a base64-encoded still image into a Frame.
// A data-URL header, if present, is stripped at the first comma.
func FrameFromBase64(encoded string) (entity.Frame, error) {
	if i := strings.Index(encoded, ","); i >= 0 {
		encoded = encoded[i+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return entity.Frame{}, fmt.Errorf("decode base64: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return entity.Frame{}, fmt.Errorf("decode image: %w", err)
	}
	return FrameFromImage(img), nil
}

// FrameFromImage resizes img to the pipeline resolution and reorders
// it into interleaved 8-bit RGB.
func FrameFromImage(img image.Image) entity.Frame {
	resized := resize.Resize(entity.FrameSize, entity.FrameSize, img, resize.Lanczos3)

	pix := make([]uint8, entity.FrameSize*entity.FrameSize*entity.FrameChannels)
	bounds := resized.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			pix[i] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return entity.NewFrame(pix)
}
