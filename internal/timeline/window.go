package timeline

import "math"

// Window 表示排班表时间轴的可见窗口 [MinHour, MaxHour]，
// 负责分钟数和时间轴百分比之间的相互换算。
type Window struct {
	MinHour int
	MaxHour int
}

func (w Window) StartMinutes() int {
	return w.MinHour * 60
}

func (w Window) EndMinutes() int {
	return w.MaxHour * 60
}

func (w Window) TotalMinutes() int {
	return (w.MaxHour - w.MinHour) * 60
}

// MinutesAtPercent 将时间轴上的百分比位置换算为分钟数。
func (w Window) MinutesAtPercent(pct float64) int {
	return w.StartMinutes() + int(math.Round(pct/100*float64(w.TotalMinutes())))
}

// PercentAtMinutes 将分钟数换算为时间轴上的百分比位置。
func (w Window) PercentAtMinutes(minutes int) float64 {
	return float64(minutes-w.StartMinutes()) / float64(w.TotalMinutes()) * 100
}

// Clamp 将分钟数限制在窗口边界内，越界的拖拽不报错而是贴边。
func (w Window) Clamp(minutes int) int {
	if minutes < w.StartMinutes() {
		return w.StartMinutes()
	}
	if minutes > w.EndMinutes() {
		return w.EndMinutes()
	}
	return minutes
}

// SnapPercent 将百分比位置吸附到一刻钟边界。
// 注意吸附必须在分钟空间里完成后再投影回百分比，
// 直接在百分比空间里取整会在窗口宽度变化时产生漂移。
func (w Window) SnapPercent(pct float64) (minutes int, snappedPct float64) {
	minutes = SnapToQuarterHour(w.MinutesAtPercent(pct))
	return minutes, w.PercentAtMinutes(minutes)
}
