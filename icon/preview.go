package icon

import (
	"fmt"
	"math"
)

// ReferenceSize 为预览字号缩放的参照边长：字号按 edge/ReferenceSize 线性缩放。
const ReferenceSize = 128

// MinPreviewFontSize 预览字号下限，保证极小尺寸下文字仍可辨认。
const MinPreviewFontSize = 8

// PreviewTier 是与主画布同步的固定尺寸预览。
type PreviewTier struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// PreviewTiers 依次为小、中、大三档预览。
var PreviewTiers = []PreviewTier{
	{Name: "small", Size: 16},
	{Name: "medium", Size: 48},
	{Name: "large", Size: 128},
}

// ScaledFontSize 计算 edge 边长预览上使用的字号：max(8, fontSize*edge/128)。
func ScaledFontSize(fontSize, edge int) float64 {
	return math.Max(MinPreviewFontSize, float64(fontSize)*float64(edge)/ReferenceSize)
}

// ExportFilename 生成导出文件名 chrome-icon-{size}x{size}-{text}.png。
// 文本原样嵌入，不做文件系统字符转义。
func ExportFilename(c Config) string {
	c = c.Normalize()
	return fmt.Sprintf("chrome-icon-%dx%d-%s.png", c.Size, c.Size, c.Text)
}
