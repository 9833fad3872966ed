package icon

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color 采用 0-255 的 RGB 数值，对应取色器给出的不透明颜色。
type Color struct {
	R, G, B uint8
}

// ParseColor 解析 #rgb 或 #rrggbb（# 可省略）。
func ParseColor(value string) (Color, error) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return Color{}, fmt.Errorf("颜色值 %s 无法解析: %w", value, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseColor 与 ParseColor 相同，但解析失败时 panic，仅用于常量初始化与测试。
func MustParseColor(value string) Color {
	c, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex 返回 #rrggbb 形式。
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// RGBA 转为标准库颜色（不透明）。
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c Color) String() string { return c.Hex() }

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
