package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 1440

// ParseTime 将 24 小时制的 HH:MM 字符串解析为当天的分钟偏移量（0~1439）。
// 时间字符串由上游校验保证合法，这里返回的错误只用于暴露编程错误。
func ParseTime(hhmm string) (int, error) {
	hourStr, minuteStr, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, fmt.Errorf("时间 %q 缺少冒号分隔符", hhmm)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("时间 %q 的小时部分无效", hhmm)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, fmt.Errorf("时间 %q 的分钟部分无效", hhmm)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("时间 %q 超出 00:00~23:59 的范围", hhmm)
	}

	return hour*60 + minute, nil
}

// MinutesToTimeStr 是 ParseTime 的逆运算，输出零填充的 HH:MM。
// 超过 1440 的分钟数（跨午夜的区间端点）会先对一天取模再格式化。
func MinutesToTimeStr(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NetMinutes 计算一个班次扣除休息后的净时长（分钟）。
// 结束时间小于等于开始时间时按跨午夜处理，结果永远不为负。
func NetMinutes(startMinutes, endMinutes, breakMinutes int) int {
	span := endMinutes - startMinutes
	if span <= 0 {
		span += MinutesPerDay
	}

	net := span - breakMinutes
	if net < 0 {
		net = 0
	}
	return net
}

// NetHours 计算一个班次扣除休息后的净工时。
// 例如 NetHours("22:00", "06:00", 0) == 8，NetHours("09:00", "17:00", 30) == 7.5。
// 按约定上游已保证时间字符串合法，无法解析时这里按 00:00 处理而不报错。
func NetHours(start, end string, breakMinutes int) float64 {
	startMinutes, _ := ParseTime(start)
	endMinutes, _ := ParseTime(end)
	return float64(NetMinutes(startMinutes, endMinutes, breakMinutes)) / 60
}

// FormatTimeShort 将 HH:MM 转成排班表上的紧凑 12 小时制标签，
// 例如 "09:00" -> "9a"，"17:30" -> "5:30p"，"00:00" -> "12a"。
func FormatTimeShort(hhmm string) string {
	minutes, _ := ParseTime(hhmm)

	hour := minutes / 60
	minute := minutes % 60

	suffix := "a"
	if hour >= 12 {
		suffix = "p"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	if minute == 0 {
		return fmt.Sprintf("%d%s", hour12, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", hour12, minute, suffix)
}
