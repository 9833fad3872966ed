package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将图标文本中的 ${path.to.value} 替换为 data 中的值。
// 可写作 ${path|默认值}：路径不存在时使用默认值；没有默认值时保留原占位符。
func Interpolate(text string, data any) string {
	if !strings.Contains(text, "${") {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-1])
		path, fallback, hasFallback := strings.Cut(expr, "|")
		path = strings.TrimSpace(path)
		if path != "" && data != nil {
			if val, ok := Lookup(data, path); ok {
				return format(val)
			}
		}
		if hasFallback {
			return strings.TrimSpace(fallback)
		}
		return match
	})
}

// Lookup 按 a.b[0].c 形式的路径在 JSON 解码得到的数据中取值。
func Lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			obj, isObj := current.(map[string]any)
			if !isObj {
				return nil, false
			}
			if current, ok = obj[name]; !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			arr, isArr := current.([]any)
			if !isArr || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}

// splitSegment 将 "items[1][0]" 拆为名称与下标序列。
func splitSegment(segment string) (string, []int, bool) {
	name, rest, found := strings.Cut(segment, "[")
	if !found {
		return segment, nil, true
	}
	rest = "[" + rest
	var indexes []int
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return name, indexes, true
}

// format 输出值的文本形式；整数值的浮点数不带小数部分。
func format(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
