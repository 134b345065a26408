package timeline

// SnapStepMinutes 是排班表上所有拖拽操作的吸附粒度。
const SnapStepMinutes = 15

// SnapToQuarterHour 将分钟数吸附到最近的一刻钟边界，
// 恰好处于中点时向上取整（Snap(7) == 0，Snap(8) == 15）。
func SnapToQuarterHour(minutes int) int {
	if minutes < 0 {
		minutes = 0
	}
	return (minutes + SnapStepMinutes/2) / SnapStepMinutes * SnapStepMinutes
}
