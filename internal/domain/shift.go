package domain

import "time"

// Shift 表示某一天内的一个工作班次。
// EndTime 小于等于 StartTime 时表示该班次跨越午夜。
type Shift struct {
	ID           int64     `json:"id"`
	ScheduleID   int64     `json:"scheduleID"`
	Date         string    `json:"date"`      // 格式 YYYY-MM-DD
	StartTime    string    `json:"startTime"` // 格式 HH:MM，24 小时制
	EndTime      string    `json:"endTime"`
	BreakMinutes int       `json:"breakMinutes"`
	EmployeeID   *int64    `json:"employeeID"` // 为 nil 时表示这是一个待认领的空班次
	PositionID   *int64    `json:"positionID"`
	Cost         float64   `json:"cost"` // 分配员工时由服务端按 净工时 × 时薪 计算
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

// Assigned 表示该班次是否已经分配给了某个员工。
func (s *Shift) Assigned() bool {
	return s.EmployeeID != nil
}
