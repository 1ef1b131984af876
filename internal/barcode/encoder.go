package barcode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/harrison/assetkit/internal/config"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Symbology names a linear barcode encoding.
type Symbology string

// Code128 is the only symbology the generator produces.
const Code128 Symbology = "code128"

// ErrUnsupportedSymbology is returned by encoders asked for a symbology they cannot render.
var ErrUnsupportedSymbology = errors.New("unsupported symbology")

// Encoder renders a payload into image file bytes.
type Encoder interface {
	// Encode returns the encoded image for payload.
	Encode(payload string, sym Symbology) ([]byte, error)
	// Extension is the file extension of the encoded image, including the dot.
	Extension() string
}

// textGap is the space in pixels between the bars and the caption.
const textGap = 4

// RasterEncoder renders barcodes as PNG images.
type RasterEncoder struct {
	// ModuleWidth is the width in pixels of one bar module
	ModuleWidth int
	// BarHeight is the height of the bars in pixels
	BarHeight int
	// QuietZone is the white margin around the symbol in pixels
	QuietZone int
	// ShowText draws the payload under the bars
	ShowText bool
}

// NewRasterEncoder creates a RasterEncoder from the barcode configuration.
func NewRasterEncoder(cfg config.BarcodeConfig) *RasterEncoder {
	return &RasterEncoder{
		ModuleWidth: cfg.ModuleWidth,
		BarHeight:   cfg.BarHeight,
		QuietZone:   cfg.QuietZone,
		ShowText:    cfg.ShowText,
	}
}

// Extension implements Encoder.
func (e *RasterEncoder) Extension() string {
	return ".png"
}

// Encode implements Encoder.
func (e *RasterEncoder) Encode(payload string, sym Symbology) ([]byte, error) {
	if sym != Code128 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSymbology, sym)
	}
	if e.ModuleWidth <= 0 || e.BarHeight <= 0 || e.QuietZone < 0 {
		return nil, fmt.Errorf("invalid raster size: module width %d, bar height %d, quiet zone %d", e.ModuleWidth, e.BarHeight, e.QuietZone)
	}

	symbol, err := code128.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q as %s: %w", payload, sym, err)
	}

	bars, err := barcode.Scale(symbol, symbol.Bounds().Dx()*e.ModuleWidth, e.BarHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, e.compose(bars, payload)); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// compose places the bars on a white canvas with a quiet zone and, when
// enabled, centers the payload text under them.
func (e *RasterEncoder) compose(bars image.Image, payload string) image.Image {
	face := basicfont.Face7x13
	drawer := &font.Drawer{Src: image.Black, Face: face}

	barsWidth := bars.Bounds().Dx()
	width := barsWidth + 2*e.QuietZone
	height := e.BarHeight + 2*e.QuietZone

	textWidth := 0
	if e.ShowText {
		textWidth = drawer.MeasureString(payload).Ceil()
		if textWidth+2*e.QuietZone > width {
			width = textWidth + 2*e.QuietZone
		}
		height += textGap + face.Height
	}

	canvas := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	barsLeft := (width - barsWidth) / 2
	barsRect := image.Rect(barsLeft, e.QuietZone, barsLeft+barsWidth, e.QuietZone+e.BarHeight)
	draw.Draw(canvas, barsRect, bars, bars.Bounds().Min, draw.Src)

	if e.ShowText {
		drawer.Dst = canvas
		baseline := e.QuietZone + e.BarHeight + textGap + face.Ascent
		drawer.Dot = fixed.P((width-textWidth)/2, baseline)
		drawer.DrawString(payload)
	}

	return canvas
}
