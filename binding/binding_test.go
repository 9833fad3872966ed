package binding

import (
	"encoding/json"
	"testing"

	"github.com/tdewolff/test"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var data any
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		t.Fatalf("解析测试数据失败: %v", err)
	}
	return data
}

func TestInterpolate(t *testing.T) {
	data := decode(t, `{"user":{"initial":"J","tags":["x","y"]},"count":3,"ratio":0.5,"none":null}`)

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"${user.initial}", "J"},
		{"${ user.initial }K", "JK"},
		{"${user.tags[1]}", "y"},
		{"${count}", "3"},
		{"${ratio}", "0.5"},
		{"${none}", ""},
		{"${missing}", "${missing}"},
		{"${missing|Z}", "Z"},
		{"${user.tags[5]|?}", "?"},
		{"${user.initial.deeper}", "${user.initial.deeper}"},
		{"${user.tags[x]}", "${user.tags[x]}"},
	}
	for _, tt := range tests {
		test.String(t, Interpolate(tt.in, data), tt.want, tt.in)
	}
}

func TestInterpolateWithoutData(t *testing.T) {
	test.String(t, Interpolate("${user.initial}", nil), "${user.initial}")
	test.String(t, Interpolate("${user.initial|A}", nil), "A")
}

func TestLookupNestedArrays(t *testing.T) {
	data := decode(t, `{"grid":[[1,2],[3,4]]}`)
	v, ok := Lookup(data, "grid[1][0]")
	test.That(t, ok)
	test.T(t, v, 3.0)

	_, ok = Lookup(data, "grid[2][0]")
	test.That(t, !ok)
}
