package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/iconforge/dsl"
	"github.com/ByLCY/iconforge/icon"
)

const sampleDSL = `
// Chrome 扩展图标
defaults {
  background: #4285F4
  color: #fff
  font: "sans-serif"; font-size: 64
}

/* 主图标 */
icon "Hi" {
  shape: rounded
  size: 48
  font-size: 24px
}

icon {
  text: "${user.initial|Q}"
  shape: diamond
  size: 16
}

# 未知形状不会报错
icon "X" { shape: hexagon }
`

func TestParseDocument(t *testing.T) {
	doc, err := dsl.ParseString(sampleDSL)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(doc.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(doc.Sections))
	}
	kinds := []string{}
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind())
	}
	if strings.Join(kinds, ",") != "defaults,icon,icon,icon" {
		t.Fatalf("unexpected section kinds %v", kinds)
	}

	defaults := doc.Sections[0].Defaults
	if len(defaults.Block.Assignments) != 4 {
		t.Fatalf("expected 4 default assignments, got %d", len(defaults.Block.Assignments))
	}
	bg := defaults.Block.Assignments[0]
	if bg.Key != "background" || bg.Value.Color == nil || *bg.Value.Color != "#4285F4" {
		t.Fatalf("unexpected background assignment %+v", bg)
	}
	font := defaults.Block.Assignments[2]
	if font.Value.String == nil || string(*font.Value.String) != "sans-serif" {
		t.Fatalf("expected quoted font family, got %+v", font.Value)
	}

	hi := doc.Sections[1].Icon
	if hi.Text == nil || string(*hi.Text) != "Hi" {
		t.Fatalf("expected icon text Hi")
	}
	if hi.Pos.Line != 10 {
		t.Fatalf("expected icon on line 10, got %d", hi.Pos.Line)
	}
	if doc.Sections[2].Icon.Text != nil {
		t.Fatalf("second icon has no header text")
	}
}

func TestConfigs(t *testing.T) {
	doc, err := dsl.ParseString(sampleDSL)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	data := map[string]any{"user": map[string]any{"initial": "J"}}
	cfgs, err := dsl.Configs(doc, icon.DefaultConfig(), data)
	if err != nil {
		t.Fatalf("Configs error: %v", err)
	}
	if len(cfgs) != 3 {
		t.Fatalf("expected 3 configs, got %d", len(cfgs))
	}

	hi := cfgs[0]
	if hi.Text != "Hi" || hi.Shape != icon.ShapeRoundedRect || hi.Size != 48 || hi.FontSize != 24 {
		t.Fatalf("unexpected first config %+v", hi)
	}
	if hi.Background != icon.MustParseColor("#4285f4") || hi.Foreground != icon.MustParseColor("#ffffff") {
		t.Fatalf("defaults not applied: %+v", hi)
	}

	second := cfgs[1]
	if second.Text != "J" || second.Shape != icon.ShapeDiamond || second.Size != 16 || second.FontSize != 64 {
		t.Fatalf("unexpected second config %+v", second)
	}

	if cfgs[2].Shape != icon.ShapeUnknown {
		t.Fatalf("unknown shape should resolve to ShapeUnknown, got %v", cfgs[2].Shape)
	}
}

func TestConfigsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown key", `icon "A" { weight: bold }`, "weight"},
		{"bad size", `icon "A" { size: 64 }`, "64"},
		{"fractional size", `icon "A" { size: 16.5 }`, "16.5"},
		{"bad color", `icon "A" { background: "nope" }`, "nope"},
		{"no icons", `defaults { size: 16 }`, "icon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := dsl.ParseString(tt.src)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			_, err = dsl.Configs(doc, icon.DefaultConfig(), nil)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	if _, err := dsl.ParseString(`icon "A" { size 16 }`); err == nil {
		t.Fatalf("expected parse error for missing colon")
	}
	if _, err := dsl.ParseString(`icon "A" { size: 16`); err == nil {
		t.Fatalf("expected parse error for unterminated block")
	}
}

func TestHashComments(t *testing.T) {
	src := "# add more icons later\n" +
		"#\n" +
		"icon \"A\" {\n" +
		"  size: 48 # fed up\n" +
		"  background: #fed # cafe\n" +
		"}\n"
	doc, err := dsl.ParseString(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	cfgs, err := dsl.Configs(doc, icon.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Configs error: %v", err)
	}
	if cfgs[0].Size != 48 || cfgs[0].Background != icon.MustParseColor("#ffeedd") {
		t.Fatalf("unexpected config %+v", cfgs[0])
	}

	// 紧跟 # 的十六进制单词是颜色，不是注释
	for _, src := range []string{
		"#add more icons later\nicon \"A\" {}\n",
		"icon \"A\" {\n  size: 48 #fed up\n}\n",
	} {
		if _, err := dsl.ParseString(src); err == nil {
			t.Fatalf("expected parse error for %q", src)
		}
	}
}
