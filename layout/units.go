package layout

// PxToPt 换算像素与 pt。栅格化时 1 个画布单位（mm）对应 1 个像素，
// 因此该比例与 mm→pt 相同。字体接口以 pt 计量字号，其余几何量均为像素。
const PxToPt = 72.0 / 25.4

// FontSizePt 将像素字号换算为字体接口使用的 pt。
func FontSizePt(px float64) float64 { return px * PxToPt }
