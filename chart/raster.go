// raster.go draws the charts go-chart has no primitive for: the
// correlation heatmap and the neutral placeholder image. Both are plain
// image/draw rasters with basicfont labels so they can never fail on
// bad data.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"insightagent/dataset"
)

var (
	placeholderBg = color.RGBA{R: 0xf1, G: 0xf5, B: 0xf2, A: 0xff}
	borderGray    = color.RGBA{R: 0xb0, G: 0xb8, B: 0xb4, A: 0xff}
	textDark      = color.RGBA{R: 0x0b, G: 0x0c, B: 0x0c, A: 0xff}
)

// renderPlaceholder produces a neutral "unable to render" image with the
// chart title and a one-line reason.
func renderPlaceholder(title, reason string) ([]byte, error) {
	const w, h = 640, 360
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderBg}, image.Point{}, draw.Src)

	for x := 0; x < w; x++ {
		img.Set(x, 0, borderGray)
		img.Set(x, h-1, borderGray)
	}
	for y := 0; y < h; y++ {
		img.Set(0, y, borderGray)
		img.Set(w-1, y, borderGray)
	}

	drawCenteredString(img, title, w/2, h/2-12)
	drawCenteredString(img, reason, w/2, h/2+12)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("placeholder encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

// renderCorrelationHeatmap draws the full numeric correlation matrix as
// a colored grid. X/y bindings are ignored, the matrix always covers
// every numeric column. Fewer than two numeric columns yields a
// placeholder instead of an error.
func renderCorrelationHeatmap(ds *dataset.Dataset, title string) ([]byte, error) {
	names, matrix := ds.Correlation()
	if len(names) < 2 {
		return renderPlaceholder(title, "need at least 2 numeric columns for a heatmap")
	}

	const cell = 64
	const margin = 110
	n := len(names)
	w := margin + n*cell + 20
	h := margin + n*cell + 20

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	drawString(img, title, 10, 20)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r := image.Rect(margin+j*cell, margin+i*cell, margin+(j+1)*cell, margin+(i+1)*cell)
			draw.Draw(img, r, &image.Uniform{C: divergingColor(matrix[i][j])}, image.Point{}, draw.Src)
			label := fmt.Sprintf("%.2f", matrix[i][j])
			drawCenteredString(img, label, margin+j*cell+cell/2, margin+i*cell+cell/2)
		}
	}

	// axis labels: columns across the top, rows down the left
	for j := 0; j < n; j++ {
		drawString(img, truncateLabel(names[j], 9), margin+j*cell+4, margin-8)
	}
	for i := 0; i < n; i++ {
		drawString(img, truncateLabel(names[i], 14), 6, margin+i*cell+cell/2)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("heatmap encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

// divergingColor maps a correlation in [-1,1] onto a blue/white/red
// scale. Values outside the range are clamped.
func divergingColor(v float64) color.RGBA {
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	if v < 0 {
		t := -v
		return color.RGBA{
			R: uint8(255 * (1 - t)),
			G: uint8(255 * (1 - t*0.7)),
			B: 255,
			A: 0xff,
		}
	}
	t := v
	return color.RGBA{
		R: 255,
		G: uint8(255 * (1 - t*0.7)),
		B: uint8(255 * (1 - t)),
		A: 0xff,
	}
}

func truncateLabel(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	// basicfont only covers ASCII, so a plain dot marks the cut
	return s[:maxLen-1] + "."
}

func drawString(img *image.RGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: textDark},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawCenteredString(img *image.RGBA, s string, cx, cy int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: textDark},
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(s).Ceil()
	d.Dot = fixed.P(cx-w/2, cy+4)
	d.DrawString(s)
}
