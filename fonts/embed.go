package fonts

import (
	"fmt"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"golang.org/x/image/font/gofont/gomonobold"
)

// 内置字体均为粗体字形，供图标文字直接使用。

// Generic family names recognised without touching the system font store.
const (
	SansSerif = "sans-serif"
	Serif     = "serif"
	Monospace = "monospace"
)

// Default 为找不到任何可用字体时的回退族。
const Default = SansSerif

var builtin = map[string][]byte{
	SansSerif: lmsans10bold.TTF,
	Serif:     lmroman10bold.TTF,
	Monospace: gomonobold.TTF,
}

// aliases 将常见的网页字体名映射到最接近的内置族。
var aliases = map[string]string{
	"arial":           SansSerif,
	"helvetica":       SansSerif,
	"verdana":         SansSerif,
	"system-ui":       SansSerif,
	"times":           Serif,
	"times new roman": Serif,
	"georgia":         Serif,
	"courier":         Monospace,
	"courier new":     Monospace,
}

// Canonical 返回 name 对应的内置族名；ok 为 false 表示需要到系统字体中查找。
// name 可以是 CSS 风格的列表（"Arial, sans-serif"），取第一个能识别的名字。
func Canonical(name string) (string, bool) {
	for _, part := range strings.Split(name, ",") {
		key := strings.ToLower(strings.Trim(strings.TrimSpace(part), `"'`))
		if _, ok := builtin[key]; ok {
			return key, true
		}
		if family, ok := aliases[key]; ok {
			return family, true
		}
	}
	return "", false
}

// Load 返回内置族的字体数据，family 可写为 "embed:serif" 或直接 "serif"。
func Load(family string) ([]byte, error) {
	family = strings.TrimPrefix(family, "embed:")
	key, ok := Canonical(family)
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 未内置该字体", family)
	}
	return builtin[key], nil
}

// Families 返回所有内置族名。
func Families() []string {
	return []string{SansSerif, Serif, Monospace}
}
