package utils

import (
	"testing"

	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
)

func TestValidateScheduleWindow(t *testing.T) {
	tests := []struct {
		name      string
		weekStart string
		minHour   int
		maxHour   int
		wantErr   bool
	}{
		{"合法的窗口", "2026-08-24", 6, 23, false},
		{"全天窗口", "2026-08-24", 0, 24, false},
		{"窗口下界为负", "2026-08-24", -1, 23, true},
		{"窗口上界超过 24", "2026-08-24", 6, 25, true},
		{"窗口为空", "2026-08-24", 9, 9, true},
		{"窗口倒置", "2026-08-24", 23, 6, true},
		{"周起始日期不是周一", "2026-08-25", 6, 23, true},
		{"周起始日期格式错误", "08/24/2026", 6, 23, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := &domain.Schedule{
				WeekStart: tt.weekStart,
				MinHour:   tt.minHour,
				MaxHour:   tt.maxHour,
			}
			err := ValidateScheduleWindow(schedule)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScheduleWindow() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateShiftWithSchedule(t *testing.T) {
	schedule := &domain.Schedule{
		WeekStart: "2026-08-24",
		MinHour:   6,
		MaxHour:   23,
	}
	fullDay := &domain.Schedule{
		WeekStart: "2026-08-24",
		MinHour:   0,
		MaxHour:   24,
	}

	tests := []struct {
		name      string
		schedule  *domain.Schedule
		date      string
		startTime string
		endTime   string
		wantErr   bool
	}{
		{"窗口内的班次", schedule, "2026-08-26", "09:00", "17:00", false},
		{"贴着窗口边界的班次", schedule, "2026-08-24", "06:00", "23:00", false},
		{"日期在一周之前", schedule, "2026-08-23", "09:00", "17:00", true},
		{"日期在一周之后", schedule, "2026-08-31", "09:00", "17:00", true},
		{"开始时间早于窗口", schedule, "2026-08-26", "05:00", "12:00", true},
		{"结束时间晚于窗口", schedule, "2026-08-26", "18:00", "23:30", true},
		{"窗口未到午夜时跨午夜", schedule, "2026-08-26", "22:00", "06:00", true},
		{"全天窗口允许跨午夜", fullDay, "2026-08-26", "22:00", "06:00", false},
		{"开始时间格式错误", schedule, "2026-08-26", "9:00:00", "17:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := &domain.Shift{
				Date:      tt.date,
				StartTime: tt.startTime,
				EndTime:   tt.endTime,
			}
			err := ValidateShiftWithSchedule(shift, tt.schedule)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShiftWithSchedule() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateShiftBreak(t *testing.T) {
	tests := []struct {
		name         string
		startTime    string
		endTime      string
		breakMinutes int
		wantErr      bool
	}{
		{"无休息", "09:00", "17:00", 0, false},
		{"正常休息", "09:00", "17:00", 30, false},
		{"休息等于班次时长", "09:00", "17:00", 480, false},
		{"休息超过班次时长", "09:00", "10:00", 90, true},
		{"休息为负", "09:00", "17:00", -15, true},
		{"跨午夜班次的休息", "22:00", "06:00", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := &domain.Shift{
				StartTime:    tt.startTime,
				EndTime:      tt.endTime,
				BreakMinutes: tt.breakMinutes,
			}
			err := ValidateShiftBreak(shift)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShiftBreak() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
