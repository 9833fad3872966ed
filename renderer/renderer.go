package renderer

import (
	"image"

	"github.com/ByLCY/iconforge/layout"
)

// Surface 是一个独立拥有的绘制目标（主画布、预览或离屏导出表面），可清空并重绘。
type Surface interface {
	Size() int
	Clear()
	Image() image.Image
}

// Renderer 将绘制计划画到目标表面上：先清空，再填充形状，最后绘制文字。
// 实现必须是确定性的：同一计划在同尺寸表面上得到逐像素相同的结果。
type Renderer interface {
	NewSurface(size int) (Surface, error)
	Render(target Surface, plan *layout.Result) error
}
