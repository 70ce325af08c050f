package enhance

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"filmvault/internal/services"
)

// Codec converts between encoded image bytes and addressable pixel buffers.
type Codec interface {
	// Decode parses encoded bytes into an NRGBA buffer and reports the
	// detected format name (jpeg, png, webp).
	Decode(data []byte) (*image.NRGBA, string, error)
	// Encode serializes the buffer back to the given format.
	Encode(img *image.NRGBA, format string) ([]byte, error)
}

type imagingCodec struct {
	jpegQuality int
}

// NewCodec returns the default codec backed by the registered image decoders.
func NewCodec() Codec {
	return &imagingCodec{jpegQuality: 95}
}

func (c *imagingCodec) Decode(data []byte) (*image.NRGBA, string, error) {
	if len(data) == 0 {
		return nil, "", services.Wrap(services.ErrImageDecode, "enhance", "decode", "empty image data", nil)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", services.Wrap(services.ErrImageDecode, "enhance", "decode", "unreadable image data", err)
	}
	return imaging.Clone(img), format, nil
}

func (c *imagingCodec) Encode(img *image.NRGBA, format string) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("encode: nil image")
	}
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "webp":
		err = webp.Encode(&buf, img, &webp.Options{Quality: float32(c.jpegQuality)})
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: c.jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
