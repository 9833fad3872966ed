package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/ByLCY/iconforge/icon"
	canvasrenderer "github.com/ByLCY/iconforge/renderer/canvas"
)

// options 汇总命令行参数；环境变量提供默认值，显式参数优先。
type options struct {
	Text          string `env:"ICONFORGE_TEXT"            envDefault:"A"`
	Background    string `env:"ICONFORGE_BACKGROUND"      envDefault:"#4285f4"`
	Color         string `env:"ICONFORGE_COLOR"           envDefault:"#ffffff"`
	Shape         string `env:"ICONFORGE_SHAPE"           envDefault:"circle"`
	Font          string `env:"ICONFORGE_FONT"            envDefault:"sans-serif"`
	FontSize      int    `env:"ICONFORGE_FONT_SIZE"       envDefault:"64"`
	Size          int    `env:"ICONFORGE_SIZE"            envDefault:"128"`
	Out           string `env:"ICONFORGE_OUT"             envDefault:"output"`
	Previews      bool   `env:"ICONFORGE_PREVIEWS"`
	NoSystemFonts bool   `env:"ICONFORGE_NO_SYSTEM_FONTS"`

	// FontFiles 按族名注册额外的字体文件，如 ICONFORGE_FONT_FILES=Brand=brand.ttf,Mono=mono.ttf
	FontFiles map[string]string `env:"ICONFORGE_FONT_FILES" envKeyValSeparator:"="`

	Batch string
	Data  string
	Debug string
}

// parseOptions 先读取环境变量（environ 为 nil 时使用进程环境），再解析 args。
func parseOptions(fs *flag.FlagSet, args []string, environ map[string]string) (options, error) {
	var opts options
	if err := env.ParseWithOptions(&opts, env.Options{Environment: environ}); err != nil {
		return options{}, fmt.Errorf("解析环境变量失败: %w", err)
	}

	fs.StringVar(&opts.Text, "text", opts.Text, "图标文字，为空时使用 A")
	fs.StringVar(&opts.Background, "bg", opts.Background, "背景颜色 #rrggbb")
	fs.StringVar(&opts.Color, "fg", opts.Color, "文字颜色 #rrggbb")
	fs.StringVar(&opts.Shape, "shape", opts.Shape, "背景形状：circle/square/rounded/diamond")
	fs.StringVar(&opts.Font, "font", opts.Font, "字体族名")
	fs.IntVar(&opts.FontSize, "font-size", opts.FontSize, fmt.Sprintf("字号（%d-%d 像素）", icon.MinFontSize, icon.MaxFontSize))
	fs.IntVar(&opts.Size, "size", opts.Size, fmt.Sprintf("图标边长，可选 %v", icon.SupportedSizes))
	fs.StringVar(&opts.Out, "out", opts.Out, "输出目录")
	fs.BoolVar(&opts.Previews, "previews", opts.Previews, "同时输出 16/48/128 预览")
	fs.BoolVar(&opts.NoSystemFonts, "no-system-fonts", opts.NoSystemFonts, "只使用内置字体")
	fs.Func("font-file", "注册字体文件 family=path，可重复", func(v string) error {
		name, path, ok := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || path == "" {
			return fmt.Errorf("字体文件参数 %q 应为 family=path", v)
		}
		if opts.FontFiles == nil {
			opts.FontFiles = map[string]string{}
		}
		opts.FontFiles[name] = path
		return nil
	})
	fs.StringVar(&opts.Batch, "batch", "", "批量图标 DSL 文件路径")
	fs.StringVar(&opts.Data, "data", "", "绑定到图标文字的 JSON 数据")
	fs.StringVar(&opts.Debug, "debug", "", "绘制计划调试 JSON 输出路径")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// config 将单图标参数转换为配置。无法识别的形状保留为 ShapeUnknown。
func (o options) config() (icon.Config, error) {
	bg, err := icon.ParseColor(o.Background)
	if err != nil {
		return icon.Config{}, fmt.Errorf("背景颜色: %w", err)
	}
	fg, err := icon.ParseColor(o.Color)
	if err != nil {
		return icon.Config{}, fmt.Errorf("文字颜色: %w", err)
	}
	shape, _ := icon.ParseShape(o.Shape)
	return icon.Config{
		Text:       o.Text,
		Background: bg,
		Foreground: fg,
		Shape:      shape,
		FontFamily: o.Font,
		FontSize:   o.FontSize,
		Size:       o.Size,
	}, nil
}

func (o options) rendererOptions() canvasrenderer.Options {
	ro := canvasrenderer.Options{SystemFonts: !o.NoSystemFonts}
	if len(o.FontFiles) > 0 {
		ro.Fonts = make(map[string]canvasrenderer.Resource, len(o.FontFiles))
		for name, path := range o.FontFiles {
			ro.Fonts[name] = canvasrenderer.Resource{Path: path}
		}
	}
	return ro
}
