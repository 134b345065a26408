package domain

import "time"

type Zone string

const (
	ZoneFront Zone = "前厅"
	ZoneBack  Zone = "后厨"
)

type Position struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Zone      Zone      `json:"zone"`
	Color     string    `json:"color"` // 排班表中用于区分岗位的颜色，形如 #RRGGBB
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
