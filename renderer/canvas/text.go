package canvasrenderer

import (
	"math"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/iconforge/layout"
)

// DrawText 以 p.Center 为中心绘制单行文字，绘制期间启用 p.Shadow，结束后把表面阴影复位。
// 不做换行或截断，过长的文字可以超出表面。
func (r *Renderer) DrawText(s *Surface, p layout.TextPlacement) error {
	face, err := r.fontFace(p.Family, p.FontSize, p.Color, p.Bold)
	if err != nil {
		return err
	}

	s.SetShadow(p.Shadow)
	defer s.ResetShadow()

	baseline := p.Center.Y + middleBaselineOffset(face.Metrics(), p.FontSize)
	line := canvas.NewTextLine(face, p.Content, canvas.Center)
	s.paint(func(ctx *canvas.Context) {
		ctx.DrawText(p.Center.X, baseline, line)
	})
	return nil
}

// middleBaselineOffset 返回从 em 框中线到基线的距离（向下为正）。
// em 框按字体的 ascent:descent 比例切分字号。
func middleBaselineOffset(m canvas.FontMetrics, size float64) float64 {
	ascent := m.Ascent
	descent := math.Abs(m.Descent) // descent 的符号随字体度量约定而定
	if ascent+descent <= 0 {
		return 0
	}
	return size * (ascent - descent) / (2 * (ascent + descent))
}
