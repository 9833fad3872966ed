package generator

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/ByLCY/iconforge/icon"
	"github.com/ByLCY/iconforge/layout"
	"github.com/ByLCY/iconforge/renderer"
)

// Preview 是一个固定尺寸的预览表面。
type Preview struct {
	Tier    icon.PreviewTier
	Surface renderer.Surface
}

// Generator 持有主画布与三档预览表面。每次输入变化调用一次 Update，
// 同步完成全部表面的重绘；导出使用独立的离屏表面。
// Generator 不支持并发调用。
type Generator struct {
	r        renderer.Renderer
	main     renderer.Surface
	previews []Preview
	last     icon.Config
	rendered bool
}

// New 创建生成器并分配预览表面；主画布在第一次 Update 时按配置尺寸创建。
func New(r renderer.Renderer) (*Generator, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer 不能为空")
	}
	g := &Generator{r: r}
	for _, tier := range icon.PreviewTiers {
		s, err := r.NewSurface(tier.Size)
		if err != nil {
			return nil, fmt.Errorf("创建 %s 预览表面失败: %w", tier.Name, err)
		}
		g.previews = append(g.previews, Preview{Tier: tier, Surface: s})
	}
	return g, nil
}

// Update 按 cfg 重绘主画布与全部预览。尺寸变化时重新创建主画布。
func (g *Generator) Update(cfg icon.Config) error {
	cfg = cfg.Normalize()
	if g.main == nil || g.main.Size() != cfg.Size {
		s, err := g.r.NewSurface(cfg.Size)
		if err != nil {
			return fmt.Errorf("创建主画布失败: %w", err)
		}
		g.main = s
	}

	plans, err := Plans(cfg)
	if err != nil {
		return err
	}
	if err := g.r.Render(g.main, plans[0]); err != nil {
		return fmt.Errorf("渲染主画布失败: %w", err)
	}
	for i, p := range g.previews {
		if err := g.r.Render(p.Surface, plans[i+1]); err != nil {
			return fmt.Errorf("渲染 %d×%d 预览失败: %w", p.Tier.Size, p.Tier.Size, err)
		}
	}
	g.last = cfg
	g.rendered = true
	return nil
}

// Main 返回主画布；Update 之前为 nil。
func (g *Generator) Main() renderer.Surface { return g.main }

// Previews 返回按尺寸从小到大排列的预览。
func (g *Generator) Previews() []Preview { return g.previews }

// Config 返回最近一次成功渲染的配置。
func (g *Generator) Config() (icon.Config, bool) { return g.last, g.rendered }

// Ready 报告是否已完成至少一次渲染（可以导出）。
func (g *Generator) Ready() bool { return g.rendered }

// Plans 返回 cfg 对应的主画布与各档预览的绘制计划，顺序为 main, previews...。
func Plans(cfg icon.Config) ([]*layout.Result, error) {
	targets := []layout.Target{layout.MainTarget(cfg)}
	for _, tier := range icon.PreviewTiers {
		targets = append(targets, layout.PreviewTarget(cfg, tier))
	}
	plans := make([]*layout.Result, 0, len(targets))
	for _, t := range targets {
		p, err := layout.Build(cfg, t)
		if err != nil {
			return nil, fmt.Errorf("生成 %s 绘制计划失败: %w", t.Name, err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Export 是一次导出的结果：文件名与 PNG 数据。
type Export struct {
	Filename string
	Data     []byte
}

// Export 在离屏表面上以配置尺寸与未缩放字号重新绘制 cfg，并编码为 PNG。
// 不读取也不修改可见表面。
func (g *Generator) Export(cfg icon.Config) (*Export, error) {
	cfg = cfg.Normalize()
	plan, err := layout.Build(cfg, layout.ExportTarget(cfg))
	if err != nil {
		return nil, fmt.Errorf("生成导出绘制计划失败: %w", err)
	}
	s, err := g.r.NewSurface(plan.Size)
	if err != nil {
		return nil, fmt.Errorf("创建离屏表面失败: %w", err)
	}
	if err := g.r.Render(s, plan); err != nil {
		return nil, fmt.Errorf("渲染导出图像失败: %w", err)
	}
	data, err := EncodePNG(s.Image())
	if err != nil {
		return nil, err
	}
	return &Export{Filename: icon.ExportFilename(cfg), Data: data}, nil
}

// Save 将导出结果写入 dir，返回完整路径。
// 文件名中的文本未经转义，包含路径分隔符时会落到子目录或失败。
func (e *Export) Save(dir string) (string, error) {
	path := filepath.Join(dir, e.Filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(path, e.Data, 0o644); err != nil {
		return "", fmt.Errorf("写入图标文件失败: %w", err)
	}
	return path, nil
}

// EncodePNG 将表面像素编码为 PNG。
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePreviews 将当前预览表面写为 dir/preview-{size}.png。
func (g *Generator) SavePreviews(dir string) ([]string, error) {
	if !g.rendered {
		return nil, fmt.Errorf("尚未渲染，无法输出预览")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	paths := make([]string, 0, len(g.previews))
	for _, p := range g.previews {
		data, err := EncodePNG(p.Surface.Image())
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, fmt.Sprintf("preview-%d.png", p.Tier.Size))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("写入预览 %s 失败: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
