package layout

import "github.com/ByLCY/iconforge/icon"

// 该文件定义绘制计划（布局结果），供渲染器与调试 JSON 共用。
// 坐标单位为像素，原点位于左上角，y 轴向下。

// Point 为画布上的一个点。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect 为矩形区域（原点 + 宽高）。
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center 返回区域中心。
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// MinSide 返回 min(width, height)。
func (r Rect) MinSide() float64 {
	if r.Width < r.Height {
		return r.Width
	}
	return r.Height
}

// Result 是一个表面的完整绘制计划：先填充形状，再居中绘制文字。
type Result struct {
	Name  string        `json:"name"`
	Size  int           `json:"size"`
	Shape ShapeGeometry `json:"shape"`
	Text  TextPlacement `json:"text"`
}

// ShapeGeometry 记录背景形状解析后的几何信息，字段按形状种类取用。
type ShapeGeometry struct {
	Kind         icon.Shape `json:"kind"`
	Region       Rect       `json:"region"`
	Fill         icon.Color `json:"fill"`
	Center       Point      `json:"center"`
	Radius       float64    `json:"radius,omitempty"`       // circle
	CornerRadius float64    `json:"cornerRadius,omitempty"` // rounded-rect
	Vertices     []Point    `json:"vertices,omitempty"`     // diamond
}

// Drawable 报告该形状是否会产生填充；未知形状为空操作。
func (g ShapeGeometry) Drawable() bool {
	return g.Kind != icon.ShapeUnknown && g.Region.Width > 0 && g.Region.Height > 0
}

// TextPlacement 描述一段以 Center 为中心、水平垂直居中的单行文字。
type TextPlacement struct {
	Content  string     `json:"content"`
	Center   Point      `json:"center"`
	FontSize float64    `json:"fontSize"` // px
	Family   string     `json:"family"`
	Color    icon.Color `json:"color"`
	Bold     bool       `json:"bold"`
	Shadow   Shadow     `json:"shadow"`
}

// Shadow 对应画布的阴影状态；零值表示无阴影。
type Shadow struct {
	Color   icon.Color `json:"color"`
	Alpha   float64    `json:"alpha"`
	OffsetX float64    `json:"offsetX"`
	OffsetY float64    `json:"offsetY"`
	Blur    float64    `json:"blur"`
}

// NoShadow 为完全透明、零偏移、零模糊的阴影状态。
var NoShadow = Shadow{}

// TextShadow 为文字使用的固定阴影：向右下偏移 1px，模糊半径 2，30% 黑色。
var TextShadow = Shadow{Alpha: 0.3, OffsetX: 1, OffsetY: 1, Blur: 2}

// Visible 报告阴影是否会实际绘制：需要非零透明度，且有偏移或模糊。
func (s Shadow) Visible() bool {
	if s.Alpha <= 0 {
		return false
	}
	return s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0
}
