package upload

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"

	// Register decoders for the formats the admin UI uploads.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	thumbMaxWidth = 800
	thumbQuality  = 75
)

// writeThumbnail decodes the image, scales it down to at most thumbMaxWidth
// wide (never enlarging), and writes it as JPEG.
func writeThumbnail(data []byte, path string) error {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	out := src
	if bounds.Dx() > thumbMaxWidth {
		scale := float64(thumbMaxWidth) / float64(bounds.Dx())
		dst := image.NewRGBA(image.Rect(0, 0, thumbMaxWidth, int(float64(bounds.Dy())*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		out = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, out, &jpeg.Options{Quality: thumbQuality})
}
