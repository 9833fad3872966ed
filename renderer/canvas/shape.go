package canvasrenderer

import (
	"github.com/tdewolff/canvas"

	"github.com/ByLCY/iconforge/icon"
	"github.com/ByLCY/iconforge/layout"
)

// FillShape 用 g.Fill 填充形状；未知形状不绘制任何内容。
func FillShape(s *Surface, g layout.ShapeGeometry) {
	if !g.Drawable() {
		return
	}
	path, x, y, ok := shapePath(g)
	if !ok {
		return
	}
	s.paint(func(ctx *canvas.Context) {
		ctx.SetFillColor(g.Fill.RGBA())
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(x, y, path)
	})
}

// shapePath 返回形状路径及其绘制原点。
func shapePath(g layout.ShapeGeometry) (*canvas.Path, float64, float64, bool) {
	r := g.Region
	switch g.Kind {
	case icon.ShapeCircle:
		// canvas.Circle 以原点为圆心
		return canvas.Circle(g.Radius), g.Center.X, g.Center.Y, true
	case icon.ShapeSquare:
		return canvas.Rectangle(r.Width, r.Height), r.X, r.Y, true
	case icon.ShapeRoundedRect:
		return canvas.RoundedRectangle(r.Width, r.Height, g.CornerRadius), r.X, r.Y, true
	case icon.ShapeDiamond:
		if len(g.Vertices) < 3 {
			return nil, 0, 0, false
		}
		p := &canvas.Path{}
		p.MoveTo(g.Vertices[0].X, g.Vertices[0].Y)
		for _, v := range g.Vertices[1:] {
			p.LineTo(v.X, v.Y)
		}
		p.Close()
		return p, 0, 0, true
	default:
		return nil, 0, 0, false
	}
}
