package colour

import (
	"image"
	"sort"

	"golang.org/x/image/draw"
)

const (
	// sampleSize is the edge length of the downsampled grid used for
	// all pixel sampling. Downsampling trades accuracy for speed and
	// smooths out anti-aliasing noise around text and borders.
	sampleSize = 100

	// quantStep is the bucket width used to merge near-identical
	// shades: each channel is rounded down to the nearest multiple of
	// 16, giving 16 levels per channel (4096 representable colours).
	quantStep = 16
)

// DominantColor is a quantised colour together with the fraction of
// sampled pixels it accounts for.
type DominantColor struct {
	Colour    RGB
	Frequency float64
}

// Quantize rounds each channel down to the nearest multiple of the
// bucket width. Quantising an already-quantised colour is a no-op.
func Quantize(rgb RGB) RGB {
	return RGB{
		R: rgb.R / quantStep * quantStep,
		G: rgb.G / quantStep * quantStep,
		B: rgb.B / quantStep * quantStep,
	}
}

// downsample scales the image onto a fixed 100x100 grid.
// Nearest-neighbour is deliberate: it keeps original pixel values
// instead of inventing blended ones.
func downsample(img image.Image) *image.RGBA {
	small := image.NewRGBA(image.Rect(0, 0, sampleSize, sampleSize))
	draw.NearestNeighbor.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)
	return small
}

// DominantColors extracts the n most frequent quantised colours from an
// image, most frequent first. Frequencies are fractions of the sampled
// pixel count. Ties are broken by first-encountered order (scanline
// order), so identical input always yields identical output.
func DominantColors(img image.Image, n int) []DominantColor {
	small := downsample(img)
	bounds := small.Bounds()

	counts := make(map[RGB]int)
	var order []RGB
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			q := Quantize(ToRGB(small.At(x, y)))
			if _, seen := counts[q]; !seen {
				order = append(order, q)
			}
			counts[q]++
			total++
		}
	}

	entries := make([]DominantColor, 0, len(order))
	for _, c := range order {
		entries = append(entries, DominantColor{
			Colour:    c,
			Frequency: float64(counts[c]) / float64(total),
		})
	}

	// Stable sort preserves first-encountered order for equal frequencies.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Frequency > entries[j].Frequency
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// MeanLuminance returns the mean WCAG relative luminance over the
// downsampled pixels. Raw pixel values are used, not the quantised
// palette.
func MeanLuminance(img image.Image) float64 {
	small := downsample(img)
	bounds := small.Bounds()

	total := 0.0
	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			total += Luminance(ToRGB(small.At(x, y)))
			count++
		}
	}

	return total / float64(count)
}

// IsDark reports whether the image reads as a dark theme. This is a
// simple global brightness threshold (mean luminance < 0.5), not a
// perceptual or histogram-based classifier; a mostly-dark page with a
// large light panel can tip it either way.
func IsDark(img image.Image) bool {
	return MeanLuminance(img) < 0.5
}
