package domain

import "time"

// Schedule 是一周的排班容器，周内的所有班次都挂在它下面。
// MinHour 和 MaxHour 决定排班表时间轴的可见窗口。
type Schedule struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	WeekStart   string    `json:"weekStart"` // 周一的日期，格式 YYYY-MM-DD
	MinHour     int       `json:"minHour"`
	MaxHour     int       `json:"maxHour"`
	IsPublished bool      `json:"isPublished"` // 发布后排班表锁定，禁止拖拽新建班次
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
