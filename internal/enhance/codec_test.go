package enhance

import (
	"errors"
	"image/color"
	"testing"

	"filmvault/internal/services"
)

func TestCodecRoundTripPNG(t *testing.T) {
	codec := NewCodec()
	src := fillNRGBA(12, 12, color.NRGBA{R: 30, G: 60, B: 90, A: 255})

	data, err := codec.Encode(src, "png")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, format, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" {
		t.Fatalf("expected png format, got %q", format)
	}
	if decoded.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v vs %v", decoded.Bounds(), src.Bounds())
	}
}

func TestCodecDecodeRejectsGarbage(t *testing.T) {
	codec := NewCodec()
	_, _, err := codec.Decode([]byte("not an image"))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !errors.Is(err, services.ErrImageDecode) {
		t.Fatalf("expected ErrImageDecode, got %v", err)
	}
}

func TestCodecDecodeRejectsEmpty(t *testing.T) {
	codec := NewCodec()
	if _, _, err := codec.Decode(nil); !errors.Is(err, services.ErrImageDecode) {
		t.Fatalf("expected ErrImageDecode for empty input, got %v", err)
	}
}

func TestEnhanceBytesKeepsFormat(t *testing.T) {
	codec := NewCodec()
	src := gradientImage(16, 16)
	data, err := codec.Encode(src, "png")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	out, err := EnhanceBytes(codec, data)
	if err != nil {
		t.Fatalf("EnhanceBytes: %v", err)
	}
	_, format, err := codec.Decode(out)
	if err != nil {
		t.Fatalf("Decode enhanced: %v", err)
	}
	if format != "png" {
		t.Fatalf("expected enhanced image re-encoded as png, got %q", format)
	}
}
