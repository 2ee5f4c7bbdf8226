package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/obrafacil/takeoff/model"
	"github.com/obrafacil/takeoff/quantity"
)

// Stroke sizes in device pixels.
const (
	MinHalfWidth  = 0.5
	WallHalfWidth = 1.5
)

var (
	horizontalColor = colorful.Hsv(220, 0.9, 0.9) // blue
	verticalColor   = colorful.Hsv(0, 0.9, 0.9)   // red
)

// Overlay rasterizes the lines of geom, horizontal ones in blue and
// vertical ones in red, at scale pixels per page unit. Walls carrying
// page coordinates are drawn on top in their classification colour. A
// non-positive scale is treated as 1.
func Overlay(geom model.PageGeometry, walls []quantity.Wall, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	c := newCanvas(geom.Width, geom.Height, scale)

	c.strokeLines(geom.Horizontal(), horizontalColor)
	c.strokeLines(geom.Vertical(), verticalColor)

	for _, w := range walls {
		start, end, ok := w.PageSegment(geom.Width, geom.Height)
		if !ok {
			continue
		}
		c.begin()
		c.segment(start, end, WallHalfWidth)
		c.fill(quantity.ClassificationColor(w.Classification))
	}

	return c.img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

type canvas struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	height float64 // page height
	scale  float64
}

func newCanvas(width, height, scale float64) *canvas {
	w := max(1, int(math.Ceil(width*scale)))
	h := max(1, int(math.Ceil(height*scale)))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &canvas{
		img:    img,
		raster: vector.NewRasterizer(w, h),
		height: height,
		scale:  scale,
	}
}

func (c *canvas) strokeLines(lines []model.Line, col color.Color) {
	if len(lines) == 0 {
		return
	}
	c.begin()
	for _, l := range lines {
		c.segment(l.Start(), l.End(), math.Max(MinHalfWidth, l.StrokeWidth*c.scale/2))
	}
	c.fill(col)
}

func (c *canvas) begin() {
	b := c.img.Bounds()
	c.raster.Reset(b.Dx(), b.Dy())
}

// device maps page space (origin bottom-left) to pixels (origin top-left).
func (c *canvas) device(p model.Point) (float64, float64) {
	return p.X * c.scale, (c.height - p.Y) * c.scale
}

// segment adds a segment as a quad of the given half width.
func (c *canvas) segment(from, to model.Point, halfWidth float64) {
	x0, y0 := c.device(from)
	x1, y1 := c.device(to)

	vx, vy := x1-x0, y1-y0
	vl := math.Hypot(vx, vy)
	if vl == 0 {
		return
	}
	nx, ny := -vy/vl*halfWidth, vx/vl*halfWidth

	c.raster.MoveTo(float32(x0+nx), float32(y0+ny))
	c.raster.LineTo(float32(x1+nx), float32(y1+ny))
	c.raster.LineTo(float32(x1-nx), float32(y1-ny))
	c.raster.LineTo(float32(x0-nx), float32(y0-ny))
	c.raster.ClosePath()
}

func (c *canvas) fill(col color.Color) {
	c.raster.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}
