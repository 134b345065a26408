package labor

import (
	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
	"github.com/crewplan-dev/schedule-board/backend/internal/timeline"
)

// Totals 是按某个维度汇总出来的净工时和人力成本。
// 成本在分配班次时由服务端算好存在班次上，这里只做累加。
type Totals struct {
	Hours float64 `json:"hours"`
	Cost  float64 `json:"cost"`
}

func shiftTotals(shift *domain.Shift) Totals {
	return Totals{
		Hours: timeline.NetHours(shift.StartTime, shift.EndTime, shift.BreakMinutes),
		Cost:  shift.Cost,
	}
}

func (t Totals) add(other Totals) Totals {
	return Totals{
		Hours: t.Hours + other.Hours,
		Cost:  t.Cost + other.Cost,
	}
}

// SummarizeByEmployee 汇总每个员工在窗口内的净工时和成本。
// 未分配的空班次不计入任何员工，由 SummarizeOpen 单独汇总。
func SummarizeByEmployee(shifts []*domain.Shift) map[int64]Totals {
	totals := make(map[int64]Totals)

	for _, shift := range shifts {
		if !shift.Assigned() {
			continue
		}
		totals[*shift.EmployeeID] = totals[*shift.EmployeeID].add(shiftTotals(shift))
	}

	return totals
}

// SummarizeOpen 汇总所有未分配的空班次。
func SummarizeOpen(shifts []*domain.Shift) Totals {
	open := Totals{}

	for _, shift := range shifts {
		if shift.Assigned() {
			continue
		}
		open = open.add(shiftTotals(shift))
	}

	return open
}

// SummarizeByDay 按日期（YYYY-MM-DD）汇总，用于排班表底部的每日合计行。
// 空班次也计入当天的合计。
func SummarizeByDay(shifts []*domain.Shift) map[string]Totals {
	totals := make(map[string]Totals)

	for _, shift := range shifts {
		totals[shift.Date] = totals[shift.Date].add(shiftTotals(shift))
	}

	return totals
}

// SummarizeByPosition 按岗位汇总，没有岗位的班次不计入。
func SummarizeByPosition(shifts []*domain.Shift) map[int64]Totals {
	totals := make(map[int64]Totals)

	for _, shift := range shifts {
		if shift.PositionID == nil {
			continue
		}
		totals[*shift.PositionID] = totals[*shift.PositionID].add(shiftTotals(shift))
	}

	return totals
}
