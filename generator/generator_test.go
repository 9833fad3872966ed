package generator

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/iconforge/icon"
	canvasrenderer "github.com/ByLCY/iconforge/renderer/canvas"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	r, err := canvasrenderer.NewRenderer(canvasrenderer.Options{})
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	g, err := New(r)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return g
}

func pixels(img image.Image) []uint8 {
	if n, ok := img.(*image.NRGBA); ok {
		return append([]uint8(nil), n.Pix...)
	}
	return nil
}

func TestNewRequiresRenderer(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestUpdateRendersMainAndPreviews(t *testing.T) {
	g := newGenerator(t)
	if g.Ready() || g.Main() != nil {
		t.Fatalf("generator must start without a main surface")
	}

	cfg := icon.DefaultConfig()
	cfg.Size = 48
	if err := g.Update(cfg); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !g.Ready() {
		t.Fatalf("generator should be ready after Update")
	}
	if got := g.Main().Size(); got != 48 {
		t.Fatalf("main size %d, want 48", got)
	}

	sizes := []int{}
	for _, p := range g.Previews() {
		sizes = append(sizes, p.Surface.Size())
		img := p.Surface.Image().(*image.NRGBA)
		half := p.Tier.Size / 2
		// 默认圆形背景：中心区域应为不透明
		if c := img.NRGBAAt(half, 1); c.A == 0 {
			t.Fatalf("preview %d not rendered", p.Tier.Size)
		}
	}
	if len(sizes) != 3 || sizes[0] != 16 || sizes[1] != 48 || sizes[2] != 128 {
		t.Fatalf("unexpected preview sizes %v", sizes)
	}
}

func TestUpdateRecreatesMainOnSizeChange(t *testing.T) {
	g := newGenerator(t)
	cfg := icon.DefaultConfig()
	if err := g.Update(cfg); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	first := g.Main()

	if err := g.Update(cfg); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if g.Main() != first {
		t.Fatalf("main surface should be reused when size is unchanged")
	}

	cfg.Size = 32
	if err := g.Update(cfg); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if g.Main() == first || g.Main().Size() != 32 {
		t.Fatalf("main surface should be recreated at 32px")
	}
}

func TestUpdateNormalizesEmptyText(t *testing.T) {
	g := newGenerator(t)
	cfg := icon.DefaultConfig()
	cfg.Text = ""
	if err := g.Update(cfg); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	last, ok := g.Config()
	if !ok || last.Text != "A" {
		t.Fatalf("last config text %q, want A", last.Text)
	}
}

func TestPlansOrder(t *testing.T) {
	cfg := icon.DefaultConfig()
	cfg.FontSize = 24
	plans, err := Plans(cfg)
	if err != nil {
		t.Fatalf("Plans error: %v", err)
	}
	names := []string{}
	for _, p := range plans {
		names = append(names, p.Name)
	}
	want := []string{"main", "preview-16", "preview-48", "preview-128"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("plan order %v, want %v", names, want)
		}
	}
	if plans[1].Text.FontSize != 8 {
		t.Fatalf("16px preview font size %g, want 8", plans[1].Text.FontSize)
	}
}

func TestExportIsIndependentOfVisibleSurfaces(t *testing.T) {
	g := newGenerator(t)
	cfg := icon.DefaultConfig()
	cfg.Size = 48
	cfg.Text = "Hi"
	cfg.FontSize = 24
	if err := g.Update(cfg); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	before := pixels(g.Main().Image())

	exp, err := g.Export(cfg)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if exp.Filename != "chrome-icon-48x48-Hi.png" {
		t.Fatalf("filename %q", exp.Filename)
	}
	if !bytes.Equal(before, pixels(g.Main().Image())) {
		t.Fatalf("export must not touch the main surface")
	}

	decoded, err := png.Decode(bytes.NewReader(exp.Data))
	if err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if decoded.Bounds().Dx() != 48 || decoded.Bounds().Dy() != 48 {
		t.Fatalf("export size %v, want 48x48", decoded.Bounds())
	}

	// 导出与主画布逐像素一致
	main, err := EncodePNG(g.Main().Image())
	if err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}
	if !bytes.Equal(main, exp.Data) {
		t.Fatalf("export differs from the main surface")
	}
}

func TestExportWithoutUpdate(t *testing.T) {
	g := newGenerator(t)
	cfg := icon.DefaultConfig()
	cfg.Text = ""
	cfg.Size = 16
	exp, err := g.Export(cfg)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if exp.Filename != "chrome-icon-16x16-A.png" {
		t.Fatalf("filename %q", exp.Filename)
	}
	if g.Main() != nil {
		t.Fatalf("export must not create the main surface")
	}
}

func TestSaveAndSavePreviews(t *testing.T) {
	g := newGenerator(t)
	dir := t.TempDir()

	if _, err := g.SavePreviews(dir); err == nil {
		t.Fatalf("expected error before first render")
	}

	cfg := icon.DefaultConfig()
	if err := g.Update(cfg); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	paths, err := g.SavePreviews(dir)
	if err != nil {
		t.Fatalf("SavePreviews error: %v", err)
	}
	if len(paths) != 3 || filepath.Base(paths[0]) != "preview-16.png" {
		t.Fatalf("unexpected preview paths %v", paths)
	}

	exp, err := g.Export(cfg)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	path, err := exp.Save(dir)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if !bytes.Equal(data, exp.Data) {
		t.Fatalf("saved file content mismatch")
	}
	if filepath.Base(path) != "chrome-icon-128x128-A.png" {
		t.Fatalf("saved as %s", path)
	}
}
