package enhance

import (
	"image"
	"math"
)

const (
	darkThreshold    = 128.0
	darkGamma        = 0.7
	darkContrast     = 2.0
	lightContrast    = 1.4
	midtoneLow       = 30.0
	midtoneHigh      = 150.0
	midtoneBoost     = 40.0
	edgeThreshold    = 20.0
	edgeBoostDark    = 0.3
	edgeBoostLight   = 0.15
	percentileClip   = 0.01
	histogramBuckets = 256
)

// Stats summarizes the brightness distribution of an image.
type Stats struct {
	AvgBrightness float64
	// MinBrightness and MaxBrightness are the robust bounds after excluding
	// the bottom and top 1% of cumulative histogram mass.
	MinBrightness int
	MaxBrightness int
	Dark          bool
}

// Analyze computes the brightness histogram and robust min/max in one pass
// over the pixel data.
func Analyze(img *image.NRGBA) Stats {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()
	if totalPixels == 0 {
		return Stats{MaxBrightness: histogramBuckets - 1}
	}

	var histogram [histogramBuckets]int
	var totalBrightness float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		for x := 0; x < bounds.Dx(); x++ {
			r := float64(img.Pix[offset])
			g := float64(img.Pix[offset+1])
			b := float64(img.Pix[offset+2])
			brightness := (r + g + b) / 3
			totalBrightness += brightness
			histogram[int(math.Round(brightness))]++
			offset += 4
		}
	}

	stats := Stats{
		AvgBrightness: totalBrightness / float64(totalPixels),
		MinBrightness: 0,
		MaxBrightness: histogramBuckets - 1,
	}
	stats.Dark = stats.AvgBrightness < darkThreshold

	cumulative := 0
	for i := 0; i < histogramBuckets; i++ {
		cumulative += histogram[i]
		if float64(cumulative) > float64(totalPixels)*percentileClip && stats.MinBrightness == 0 {
			stats.MinBrightness = i
		}
		if float64(cumulative) < float64(totalPixels)*(1-percentileClip) {
			stats.MaxBrightness = i
		}
	}
	// Near-uniform images can clip the bounds past each other.
	if stats.MaxBrightness < stats.MinBrightness {
		stats.MaxBrightness = stats.MinBrightness
	}
	return stats
}

// Enhance returns a brightness/contrast-normalized copy of the image tuned
// for OCR on disc covers. The input is never mutated; the alpha channel is
// carried through untouched.
func Enhance(img *image.NRGBA) *image.NRGBA {
	stats := Analyze(img)
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)

	span := float64(stats.MaxBrightness - stats.MinBrightness)
	if span == 0 {
		span = 1
	}
	edgeBoost := edgeBoostLight
	contrastFactor := contrastStretchFactor(lightContrast)
	if stats.Dark {
		edgeBoost = edgeBoostDark
		contrastFactor = contrastStretchFactor(darkContrast)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		srcOffset := img.PixOffset(bounds.Min.X, y)
		dstOffset := out.PixOffset(bounds.Min.X, y)
		for x := 0; x < bounds.Dx(); x++ {
			r := float64(img.Pix[srcOffset])
			g := float64(img.Pix[srcOffset+1])
			b := float64(img.Pix[srcOffset+2])
			original := (r + g + b) / 3

			if stats.Dark {
				// Histogram equalization with gamma correction, preserving
				// hue/saturation by scaling channels uniformly.
				normalized := (original - float64(stats.MinBrightness)) / span
				target := math.Pow(normalized, darkGamma) * 255
				ratio := target / math.Max(original, 1)
				r = clamp(r * ratio)
				g = clamp(g * ratio)
				b = clamp(b * ratio)

				r = clamp(contrastFactor*(r-128) + 128)
				g = clamp(contrastFactor*(g-128) + 128)
				b = clamp(contrastFactor*(b-128) + 128)

				// Grey text on black backgrounds lives in the midtones.
				if original > midtoneLow && original < midtoneHigh {
					r = clamp(r + midtoneBoost)
					g = clamp(g + midtoneBoost)
					b = clamp(b + midtoneBoost)
				}
			} else {
				r = clamp(contrastFactor*(r-128) + 128)
				g = clamp(contrastFactor*(g-128) + 128)
				b = clamp(contrastFactor*(b-128) + 128)
			}

			// Brightness-difference edge emphasis, no neighbor sampling.
			if diff := math.Abs(original - stats.AvgBrightness); diff > edgeThreshold {
				r = clamp(r + diff*edgeBoost)
				g = clamp(g + diff*edgeBoost)
				b = clamp(b + diff*edgeBoost)
			}

			out.Pix[dstOffset] = uint8(r)
			out.Pix[dstOffset+1] = uint8(g)
			out.Pix[dstOffset+2] = uint8(b)
			out.Pix[dstOffset+3] = img.Pix[srcOffset+3]

			srcOffset += 4
			dstOffset += 4
		}
	}
	return out
}

// EnhanceBytes decodes, enhances, and re-encodes an image in its original
// format.
func EnhanceBytes(codec Codec, data []byte) ([]byte, error) {
	img, format, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return codec.Encode(Enhance(img), format)
}

// contrastStretchFactor implements the standard contrast stretch formula for
// a contrast value expressed as a multiplier.
func contrastStretchFactor(contrast float64) float64 {
	return (259 * (contrast*255 + 255)) / (255 * (259 - contrast*255))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}
