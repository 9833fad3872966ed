package canvasrenderer

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/iconforge/fonts"
	"github.com/ByLCY/iconforge/icon"
	"github.com/ByLCY/iconforge/layout"
	"github.com/ByLCY/iconforge/renderer"
)

// Renderer draws icon plans via github.com/tdewolff/canvas.
type Renderer struct {
	systemFonts bool

	// injected resources
	fontBlobs map[string][]byte // by lower-cased family name

	fontMu         sync.Mutex
	fontFamilies   map[string]*canvas.FontFamily
	fallbackFamily *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	// SystemFonts enables looking up unknown family names in the system font store.
	SystemFonts bool
	// Fonts registers extra families by name, taking precedence over built-ins.
	Fonts map[string]Resource
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a renderer. Injected fonts take precedence over built-ins;
// a font file that cannot be read is an error.
func NewRenderer(opts Options) (*Renderer, error) {
	r := &Renderer{
		systemFonts:  opts.SystemFonts,
		fontBlobs:    map[string][]byte{},
		fontFamilies: map[string]*canvas.FontFamily{},
	}
	for name, res := range opts.Fonts {
		key := familyKey(name)
		if key == "" {
			return nil, fmt.Errorf("字体族名不能为空")
		}
		data := res.Bytes
		if len(data) == 0 && res.Path != "" {
			var err error
			if data, err = os.ReadFile(res.Path); err != nil {
				return nil, fmt.Errorf("读取字体 %s 失败: %w", name, err)
			}
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("字体 %s 没有数据", name)
		}
		r.fontBlobs[key] = data
	}
	return r, nil
}

// NewSurface returns a transparent surface of the given edge length.
func (r *Renderer) NewSurface(size int) (renderer.Surface, error) {
	return NewSurface(size)
}

// Render clears target, fills the plan's shape over the full extent and draws its text.
func (r *Renderer) Render(target renderer.Surface, plan *layout.Result) error {
	if plan == nil {
		return fmt.Errorf("绘制计划为空")
	}
	s, ok := target.(*Surface)
	if !ok || s == nil {
		return fmt.Errorf("不支持的绘制表面类型 %T", target)
	}
	if s.Size() != plan.Size {
		return fmt.Errorf("绘制计划 %s 的尺寸 %d 与表面尺寸 %d 不一致", plan.Name, plan.Size, s.Size())
	}

	s.Clear()
	FillShape(s, plan.Shape)
	if err := r.DrawText(s, plan.Text); err != nil {
		return fmt.Errorf("绘制文字失败: %w", err)
	}
	return nil
}

// RenderConfig is a convenience for drawing cfg onto a new surface of target's size.
func (r *Renderer) RenderConfig(cfg icon.Config, target layout.Target) (*Surface, error) {
	plan, err := layout.Build(cfg, target)
	if err != nil {
		return nil, err
	}
	s, err := NewSurface(plan.Size)
	if err != nil {
		return nil, err
	}
	if err := r.Render(s, plan); err != nil {
		return nil, err
	}
	return s, nil
}

// fontFace returns a face of sizePx pixels for the named family.
func (r *Renderer) fontFace(family string, sizePx float64, col icon.Color, bold bool) (*canvas.FontFace, error) {
	fam, err := r.ensureFontFamily(family)
	if err != nil {
		return nil, err
	}
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	return fam.Face(layout.FontSizePt(sizePx), col.RGBA(), style, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(name string) (*canvas.FontFamily, error) {
	key := familyKey(name)
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[key]; ok {
		return family, nil
	}

	family, err := r.loadFamily(name, key)
	if err != nil {
		fallback, fbErr := r.fallback()
		if fbErr != nil {
			return nil, fmt.Errorf("加载字体 %s 失败且无可用回退字体: %w", name, fbErr)
		}
		r.fontFamilies[key] = fallback
		return fallback, nil
	}
	r.fontFamilies[key] = family
	return family, nil
}

// loadFamily 依次尝试注入字体、内置字体与系统字体。
func (r *Renderer) loadFamily(name, key string) (*canvas.FontFamily, error) {
	if blob, ok := r.fontBlobs[key]; ok {
		return familyFromBytes(name, blob)
	}
	if builtin, ok := fonts.Canonical(name); ok {
		data, err := fonts.Load(builtin)
		if err != nil {
			return nil, err
		}
		return familyFromBytes(builtin, data)
	}
	if !r.systemFonts || key == "" {
		return nil, fmt.Errorf("字体 %q 未注册", name)
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadSystemFont(name, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("查找系统字体 %s 失败: %w", name, err)
	}
	// 缺少粗体字形时由 canvas 以常规字形加粗模拟
	_ = family.LoadSystemFont(name, canvas.FontBold)
	return family, nil
}

func (r *Renderer) fallback() (*canvas.FontFamily, error) {
	if r.fallbackFamily != nil {
		return r.fallbackFamily, nil
	}
	data, err := fonts.Load(fonts.Default)
	if err != nil {
		return nil, err
	}
	family, err := familyFromBytes("iconforge-fallback", data)
	if err != nil {
		return nil, err
	}
	r.fallbackFamily = family
	return family, nil
}

// familyFromBytes 将同一份字体数据同时注册为常规与粗体，避免请求粗体时再叠加模拟加粗。
func familyFromBytes(name string, data []byte) (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily(name)
	for _, style := range []canvas.FontStyle{canvas.FontRegular, canvas.FontBold} {
		if err := family.LoadFont(data, 0, style); err != nil {
			return nil, fmt.Errorf("解析字体 %s 失败: %w", name, err)
		}
	}
	return family, nil
}

func familyKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
