package layout

import (
	"fmt"

	"github.com/ByLCY/iconforge/icon"
)

// Target 描述一个待绘制的表面：名称仅用于调试输出。
type Target struct {
	Name     string
	Size     int
	FontSize float64
}

// MainTarget 为主画布：使用配置尺寸与未缩放字号。
func MainTarget(cfg icon.Config) Target {
	return Target{Name: "main", Size: cfg.Size, FontSize: float64(cfg.FontSize)}
}

// PreviewTarget 为固定尺寸预览：字号按参照尺寸线性缩放并设下限。
func PreviewTarget(cfg icon.Config, tier icon.PreviewTier) Target {
	return Target{
		Name:     fmt.Sprintf("preview-%d", tier.Size),
		Size:     tier.Size,
		FontSize: icon.ScaledFontSize(cfg.FontSize, tier.Size),
	}
}

// ExportTarget 为离屏导出表面，与主画布的绘制参数完全一致。
func ExportTarget(cfg icon.Config) Target {
	t := MainTarget(cfg)
	t.Name = "export"
	return t
}
