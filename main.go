package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/iconforge/binding"
	"github.com/ByLCY/iconforge/dsl"
	"github.com/ByLCY/iconforge/generator"
	"github.com/ByLCY/iconforge/icon"
	"github.com/ByLCY/iconforge/layout"
	"github.com/ByLCY/iconforge/renderer"
	canvasrenderer "github.com/ByLCY/iconforge/renderer/canvas"
)

func main() {
	log.SetPrefix("[iconforge] ")
	log.SetFlags(0)

	opts, err := parseOptions(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		log.Fatalf("解析参数失败: %v", err)
	}

	r, err := canvasrenderer.NewRenderer(opts.rendererOptions())
	if err != nil {
		log.Fatalf("初始化渲染器失败: %v", err)
	}
	paths, err := run(opts, r)
	if err != nil {
		log.Fatalf("生成图标失败: %v", err)
	}
	for _, p := range paths {
		fmt.Printf("已生成图标：%s\n", p)
	}
}

// run 串联配置解析、渲染、预览与导出，返回写出的图标路径。
func run(opts options, r renderer.Renderer) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer 不能为空")
	}
	var inputData any
	if opts.Data != "" {
		if err := json.Unmarshal([]byte(opts.Data), &inputData); err != nil {
			return nil, fmt.Errorf("解析 data JSON 失败: %w", err)
		}
	}

	cfgs, err := loadConfigs(opts, inputData)
	if err != nil {
		return nil, err
	}

	g, err := generator.New(r)
	if err != nil {
		return nil, err
	}

	var (
		written []string
		plans   []*layout.Result
	)
	for i, cfg := range cfgs {
		if cfg.Shape == icon.ShapeUnknown {
			log.Printf("警告：图标 %q 的形状无法识别，将不绘制背景", cfg.Text)
		}
		if err := g.Update(cfg); err != nil {
			return nil, err
		}
		exp, err := g.Export(cfg)
		if err != nil {
			return nil, err
		}
		path, err := exp.Save(opts.Out)
		if err != nil {
			return nil, err
		}
		written = append(written, path)

		if opts.Previews {
			dir := filepath.Join(opts.Out, fmt.Sprintf("previews-%d", i+1))
			if _, err := g.SavePreviews(dir); err != nil {
				return nil, err
			}
		}
		if opts.Debug != "" {
			p, err := generator.Plans(cfg)
			if err != nil {
				return nil, err
			}
			exportPlan, err := layout.Build(cfg, layout.ExportTarget(cfg))
			if err != nil {
				return nil, err
			}
			plans = append(plans, append(p, exportPlan)...)
		}
	}

	if opts.Debug != "" {
		if err := writeDebug(plans, opts.Debug); err != nil {
			return nil, err
		}
	}
	return written, nil
}

// loadConfigs 返回待生成的配置：指定 -batch 时读取 DSL，以命令行参数作为默认值。
func loadConfigs(opts options, data any) ([]icon.Config, error) {
	base, err := opts.config()
	if err != nil {
		return nil, err
	}
	if opts.Batch == "" {
		base.Text = binding.Interpolate(base.Text, data)
		if err := base.Validate(); err != nil {
			return nil, err
		}
		return []icon.Config{base}, nil
	}

	file, err := os.Open(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("无法打开 DSL 文件 %s: %w", opts.Batch, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析 DSL 失败: %w", err)
	}
	cfgs, err := dsl.Configs(doc, base, data)
	if err != nil {
		return nil, fmt.Errorf("展开 DSL 配置失败: %w", err)
	}
	return cfgs, nil
}

func writeDebug(plans []*layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(plans, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
