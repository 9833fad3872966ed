package icon

import (
	"fmt"
	"slices"
)

// 该文件定义一次渲染所需的完整参数 Config（IconConfig）及其默认值与校验。

const (
	// FallbackText 在文本为空时代替用户输入。
	FallbackText = "A"

	MinFontSize = 8
	MaxFontSize = 200
)

// SupportedSizes 为可选的画布边长（像素），与浏览器扩展图标规格一致。
var SupportedSizes = []int{16, 32, 48, 128}

// Config 完整描述一次图标渲染：相同的 Config 总是得到相同的像素。
type Config struct {
	Text       string `json:"text"`
	Background Color  `json:"background"`
	Foreground Color  `json:"foreground"`
	Shape      Shape  `json:"shape"`
	FontFamily string `json:"fontFamily"`
	FontSize   int    `json:"fontSize"`
	Size       int    `json:"size"`
}

// DefaultConfig 返回界面初始状态对应的配置。
func DefaultConfig() Config {
	return Config{
		Text:       FallbackText,
		Background: Color{R: 0x42, G: 0x85, B: 0xf4},
		Foreground: Color{R: 0xff, G: 0xff, B: 0xff},
		Shape:      ShapeCircle,
		FontFamily: "sans-serif",
		FontSize:   64,
		Size:       128,
	}
}

// Normalize 返回应用了空文本回退后的副本，绘制前必须先调用。
func (c Config) Normalize() Config {
	if c.Text == "" {
		c.Text = FallbackText
	}
	return c
}

// Validate 检查来自命令行或 DSL 的取值是否落在界面控件允许的范围内。
// 未知形状不视为错误：渲染时按“不填充”处理。
func (c Config) Validate() error {
	if !IsSupportedSize(c.Size) {
		return fmt.Errorf("不支持的图标尺寸 %d，可选值：%v", c.Size, SupportedSizes)
	}
	if c.FontSize < MinFontSize || c.FontSize > MaxFontSize {
		return fmt.Errorf("字号 %d 超出范围 [%d, %d]", c.FontSize, MinFontSize, MaxFontSize)
	}
	return nil
}

// IsSupportedSize 报告 size 是否为可选边长之一。
func IsSupportedSize(size int) bool {
	return slices.Contains(SupportedSizes, size)
}
