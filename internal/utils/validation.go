package utils

import (
	"fmt"
	"time"

	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
	"github.com/crewplan-dev/schedule-board/backend/internal/timeline"
)

const dateLayout = "2006-01-02"

func ValidateScheduleWindow(schedule *domain.Schedule) error {
	if schedule.MinHour < 0 || schedule.MaxHour > 24 || schedule.MinHour >= schedule.MaxHour {
		return fmt.Errorf("时间轴窗口 [%d, %d] 非法", schedule.MinHour, schedule.MaxHour)
	}

	weekStart, err := time.Parse(dateLayout, schedule.WeekStart)
	if err != nil {
		return fmt.Errorf("周起始日期 %q 格式错误", schedule.WeekStart)
	}
	if weekStart.Weekday() != time.Monday {
		return fmt.Errorf("周起始日期 %q 不是周一", schedule.WeekStart)
	}

	return nil
}

// ValidateShiftWithSchedule 检查班次的日期落在排班表的一周内，
// 时间落在排班表的时间轴窗口内。跨午夜的班次只有在窗口延伸到
// 24 点时才允许存在。
func ValidateShiftWithSchedule(shift *domain.Shift, schedule *domain.Schedule) error {
	date, err := time.Parse(dateLayout, shift.Date)
	if err != nil {
		return fmt.Errorf("班次日期 %q 格式错误", shift.Date)
	}

	weekStart, err := time.Parse(dateLayout, schedule.WeekStart)
	if err != nil {
		return fmt.Errorf("周起始日期 %q 格式错误", schedule.WeekStart)
	}
	if date.Before(weekStart) || !date.Before(weekStart.AddDate(0, 0, 7)) {
		return fmt.Errorf("班次日期 %q 不在排班表所在的一周内", shift.Date)
	}

	startMinutes, err := timeline.ParseTime(shift.StartTime)
	if err != nil {
		return fmt.Errorf("班次开始时间格式错误：%w", err)
	}
	endMinutes, err := timeline.ParseTime(shift.EndTime)
	if err != nil {
		return fmt.Errorf("班次结束时间格式错误：%w", err)
	}

	window := timeline.Window{MinHour: schedule.MinHour, MaxHour: schedule.MaxHour}

	if startMinutes < window.StartMinutes() || startMinutes > window.EndMinutes() {
		return fmt.Errorf("班次开始时间 %s 超出时间轴窗口", shift.StartTime)
	}

	if endMinutes <= startMinutes {
		// 跨午夜
		if schedule.MaxHour != 24 {
			return fmt.Errorf("时间轴窗口未延伸到午夜，不允许跨午夜班次")
		}
		return nil
	}

	if endMinutes > window.EndMinutes() {
		return fmt.Errorf("班次结束时间 %s 超出时间轴窗口", shift.EndTime)
	}

	return nil
}

// ValidateShiftBreak 检查扣除休息后的净时长不为负。
func ValidateShiftBreak(shift *domain.Shift) error {
	if shift.BreakMinutes < 0 {
		return fmt.Errorf("休息时长不能为负")
	}

	startMinutes, err := timeline.ParseTime(shift.StartTime)
	if err != nil {
		return fmt.Errorf("班次开始时间格式错误：%w", err)
	}
	endMinutes, err := timeline.ParseTime(shift.EndTime)
	if err != nil {
		return fmt.Errorf("班次结束时间格式错误：%w", err)
	}

	span := endMinutes - startMinutes
	if span <= 0 {
		span += timeline.MinutesPerDay
	}
	if shift.BreakMinutes > span {
		return fmt.Errorf("休息时长 %d 分钟超过了班次时长", shift.BreakMinutes)
	}

	return nil
}
