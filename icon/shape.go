package icon

import (
	"encoding/json"
	"strings"
)

// Shape 为背景形状的封闭枚举。ShapeUnknown 保留给无法识别的取值，绘制时不产生任何填充。
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeCircle
	ShapeSquare
	ShapeRoundedRect
	ShapeDiamond
)

// Shapes 列出所有可绘制的形状，顺序与界面下拉框一致。
var Shapes = []Shape{ShapeCircle, ShapeSquare, ShapeRoundedRect, ShapeDiamond}

// ParseShape 解析形状名称；ok 为 false 时返回 ShapeUnknown。
func ParseShape(name string) (Shape, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circle":
		return ShapeCircle, true
	case "square", "rect":
		return ShapeSquare, true
	case "rounded", "rounded-rect":
		return ShapeRoundedRect, true
	case "diamond":
		return ShapeDiamond, true
	default:
		return ShapeUnknown, false
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeRoundedRect:
		return "rounded-rect"
	case ShapeDiamond:
		return "diamond"
	default:
		return "unknown"
	}
}

func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Shape) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s, _ = ParseShape(name)
	return nil
}
