package dsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/iconforge/binding"
	"github.com/ByLCY/iconforge/icon"
)

// Configs 将文档展开为图标配置列表。defaults 段落对其后声明的 icon 生效，
// icon 内的属性覆盖默认值；文本中的 ${path} 以 data 插值。
func Configs(doc *Document, base icon.Config, data any) ([]icon.Config, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	current := base
	var out []icon.Config
	for _, section := range doc.Sections {
		switch {
		case section.Defaults != nil:
			if err := applyBlock(&current, section.Defaults.Block); err != nil {
				return nil, err
			}
		case section.Icon != nil:
			cfg := current
			if section.Icon.Text != nil {
				cfg.Text = string(*section.Icon.Text)
			}
			if err := applyBlock(&cfg, section.Icon.Block); err != nil {
				return nil, err
			}
			cfg.Text = binding.Interpolate(cfg.Text, data)
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("%s: icon %q: %w", section.Icon.Pos, cfg.Text, err)
			}
			out = append(out, cfg)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("文档中缺少 icon 段落")
	}
	return out, nil
}

func applyBlock(cfg *icon.Config, block *Block) error {
	if block == nil {
		return nil
	}
	for _, a := range block.Assignments {
		if err := applyAssignment(cfg, a); err != nil {
			return fmt.Errorf("%s: %w", a.Pos, err)
		}
	}
	return nil
}

func applyAssignment(cfg *icon.Config, a *Assignment) error {
	raw := a.Value.Raw()
	switch strings.ToLower(a.Key) {
	case "text":
		cfg.Text = raw
	case "background", "background-color", "bg":
		c, err := icon.ParseColor(raw)
		if err != nil {
			return err
		}
		cfg.Background = c
	case "color", "text-color", "fg":
		c, err := icon.ParseColor(raw)
		if err != nil {
			return err
		}
		cfg.Foreground = c
	case "shape":
		// 无法识别的形状保留为 ShapeUnknown，渲染时不填充
		cfg.Shape, _ = icon.ParseShape(raw)
	case "font", "font-family":
		cfg.FontFamily = raw
	case "font-size":
		n, err := parsePixels(a.Value)
		if err != nil {
			return fmt.Errorf("font-size: %w", err)
		}
		cfg.FontSize = n
	case "size":
		n, err := parsePixels(a.Value)
		if err != nil {
			return fmt.Errorf("size: %w", err)
		}
		cfg.Size = n
	default:
		return fmt.Errorf("未知属性 %s", a.Key)
	}
	return nil
}

// parsePixels 解析整数像素值，允许 px 后缀。
func parsePixels(v *Value) (int, error) {
	if v == nil || (v.Number == nil && v.String == nil) {
		return 0, fmt.Errorf("需要数值，实际为 %q", v.Raw())
	}
	raw := strings.TrimSuffix(strings.TrimSpace(v.Raw()), "px")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("数值 %q 必须为整数像素", v.Raw())
	}
	return n, nil
}
