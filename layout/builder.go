package layout

import (
	"fmt"

	"github.com/ByLCY/iconforge/icon"
)

// roundedCornerRatio 圆角半径占 min(width, height) 的比例。
const roundedCornerRatio = 0.15

// Build 根据配置与目标表面生成绘制计划：形状覆盖整个表面，文字位于表面中心。
func Build(cfg icon.Config, target Target) (*Result, error) {
	if target.Size <= 0 {
		return nil, fmt.Errorf("layout: 表面尺寸必须为正数，实际为 %d", target.Size)
	}
	if target.FontSize <= 0 {
		return nil, fmt.Errorf("layout: 字号必须为正数，实际为 %g", target.FontSize)
	}
	cfg = cfg.Normalize()

	edge := float64(target.Size)
	region := Rect{X: 0, Y: 0, Width: edge, Height: edge}
	shape := ShapeFor(region, cfg.Shape)
	shape.Fill = cfg.Background

	return &Result{
		Name:  target.Name,
		Size:  target.Size,
		Shape: shape,
		Text: TextPlacement{
			Content:  cfg.Text,
			Center:   region.Center(),
			FontSize: target.FontSize,
			Family:   cfg.FontFamily,
			Color:    cfg.Foreground,
			Bold:     true,
			Shadow:   TextShadow,
		},
	}, nil
}

// ShapeFor 计算 kind 形状填满 region 时的几何信息。
// 未知形状只记录区域，Drawable 返回 false。
func ShapeFor(region Rect, kind icon.Shape) ShapeGeometry {
	g := ShapeGeometry{Kind: kind, Region: region, Center: region.Center()}
	switch kind {
	case icon.ShapeCircle:
		g.Radius = region.MinSide() / 2
	case icon.ShapeSquare:
		// 直接使用 region
	case icon.ShapeRoundedRect:
		g.CornerRadius = region.MinSide() * roundedCornerRatio
	case icon.ShapeDiamond:
		x, y, w, h := region.X, region.Y, region.Width, region.Height
		g.Vertices = []Point{
			{X: x + w/2, Y: y},
			{X: x + w, Y: y + h/2},
			{X: x + w/2, Y: y + h},
			{X: x, Y: y + h/2},
		}
	}
	return g
}
