// Test image generator for creating a sample dark-theme screenshot
// approximating the workflow editor: design-system background, an
// elevated panel, accent buttons, and light text pixels.
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	width := 1280
	height := 800
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	bgPrimary := color.RGBA{R: 0x02, G: 0x06, B: 0x17, A: 255}
	bgElevated := color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 255}
	primary := color.RGBA{R: 0x63, G: 0x66, B: 0xF1, A: 255}
	textPrimary := color.RGBA{R: 0xF8, G: 0xFA, B: 0xFC, A: 255}

	// Background everywhere.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, bgPrimary)
		}
	}

	// Elevated side panel.
	for y := 0; y < height; y++ {
		for x := 0; x < 280; x++ {
			img.Set(x, y, bgElevated)
		}
	}

	// Accent button row.
	for y := 40; y < 80; y++ {
		for x := 320; x < 520; x++ {
			img.Set(x, y, primary)
		}
	}

	// A few text lines.
	for line := 0; line < 12; line++ {
		y0 := 140 + line*48
		for y := y0; y < y0+14; y++ {
			for x := 320; x < 1100; x += 3 {
				img.Set(x, y, textPrimary)
			}
		}
	}

	file, err := os.Create("testdata/sample.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}

	println("Test image created: testdata/sample.png")
}
