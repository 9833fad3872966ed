package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将一组绘制计划输出为 JSON，便于核对几何与字号。
func WriteDebugJSON(plans []*Result, path string) error {
	if len(plans) == 0 {
		return nil
	}
	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
