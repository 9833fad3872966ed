package canvasrenderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/iconforge/layout"
	"github.com/ByLCY/iconforge/renderer"
)

// Surface is an owned raster drawing target of size×size pixels.
//
// Every paint is rasterized through tdewolff/canvas at one pixel per canvas
// unit and composited over the current pixels. While a visible shadow is set,
// each paint first composites a tinted, offset and blurred copy of itself.
type Surface struct {
	size   int
	img    *image.NRGBA
	shadow layout.Shadow
}

var _ renderer.Surface = (*Surface)(nil)

// NewSurface returns a transparent surface.
func NewSurface(size int) (*Surface, error) {
	if size <= 0 {
		return nil, fmt.Errorf("表面尺寸必须为正数，实际为 %d", size)
	}
	s := &Surface{size: size}
	s.Clear()
	return s, nil
}

// Size returns the edge length in pixels.
func (s *Surface) Size() int { return s.size }

// Clear resets every pixel to fully transparent. The shadow state is untouched.
func (s *Surface) Clear() {
	s.img = imaging.New(s.size, s.size, color.NRGBA{})
}

// Image returns the current pixels.
func (s *Surface) Image() image.Image { return s.img }

// NRGBA returns the current pixels with direct pixel access.
func (s *Surface) NRGBA() *image.NRGBA { return s.img }

// Shadow returns the shadow applied to subsequent paints.
func (s *Surface) Shadow() layout.Shadow { return s.shadow }

// SetShadow sets the shadow applied to subsequent paints.
func (s *Surface) SetShadow(shadow layout.Shadow) { s.shadow = shadow }

// ResetShadow sets the shadow back to fully transparent with zero offset and blur.
func (s *Surface) ResetShadow() { s.shadow = layout.NoShadow }

// paint 在与表面等大的画布上执行 draw（坐标原点在左上角），栅格化后叠加到表面。
func (s *Surface) paint(draw func(ctx *canvas.Context)) {
	edge := float64(s.size)
	c := canvas.New(edge, edge)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	draw(ctx)

	layer := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	if s.shadow.Visible() {
		s.img = imaging.Overlay(s.img, castShadow(layer, s.shadow), shadowOffset(s.shadow), 1.0)
	}
	s.img = imaging.Overlay(s.img, layer, image.Point{}, 1.0)
}

// castShadow 以 layer 的覆盖度为遮罩生成阴影图层。
func castShadow(layer image.Image, shadow layout.Shadow) *image.NRGBA {
	alpha := math.Min(math.Max(shadow.Alpha, 0), 1)
	tinted := imaging.AdjustFunc(layer, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: shadow.Color.R,
			G: shadow.Color.G,
			B: shadow.Color.B,
			A: uint8(float64(c.A)*alpha + 0.5),
		}
	})
	if shadow.Blur > 0 {
		// 模糊半径按画布阴影的约定换算为高斯标准差 blur/2
		tinted = imaging.Blur(tinted, shadow.Blur/2)
	}
	return tinted
}

func shadowOffset(shadow layout.Shadow) image.Point {
	return image.Pt(int(math.Round(shadow.OffsetX)), int(math.Round(shadow.OffsetY)))
}
