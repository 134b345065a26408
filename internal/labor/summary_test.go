package labor

import (
	"math"
	"testing"

	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
)

func ptr(id int64) *int64 {
	return &id
}

func sampleShifts() []*domain.Shift {
	return []*domain.Shift{
		{ID: 1, Date: "2025-06-02", StartTime: "09:00", EndTime: "17:00", BreakMinutes: 30, EmployeeID: ptr(1), PositionID: ptr(10), Cost: 150},
		{ID: 2, Date: "2025-06-02", StartTime: "17:00", EndTime: "23:00", BreakMinutes: 0, EmployeeID: ptr(2), PositionID: ptr(11), Cost: 90},
		{ID: 3, Date: "2025-06-03", StartTime: "22:00", EndTime: "06:00", BreakMinutes: 0, EmployeeID: ptr(1), PositionID: ptr(10), Cost: 160},
		{ID: 4, Date: "2025-06-03", StartTime: "10:00", EndTime: "14:00", BreakMinutes: 0, Cost: 0}, // 空班次
	}
}

func TestSummarizeByEmployee(t *testing.T) {
	totals := SummarizeByEmployee(sampleShifts())

	if len(totals) != 2 {
		t.Fatalf("员工数 = %d, want 2", len(totals))
	}
	if got := totals[1]; got.Hours != 15.5 || got.Cost != 310 {
		t.Errorf("员工 1 = %+v, want {Hours:15.5 Cost:310}", got)
	}
	if got := totals[2]; got.Hours != 6 || got.Cost != 90 {
		t.Errorf("员工 2 = %+v, want {Hours:6 Cost:90}", got)
	}
}

func TestSummarizeOpenExcludedFromEmployeeTotals(t *testing.T) {
	shifts := sampleShifts()

	open := SummarizeOpen(shifts)
	if open.Hours != 4 {
		t.Fatalf("空班次工时 = %v, want 4", open.Hours)
	}

	// 空班次不计入任何员工
	totals := SummarizeByEmployee(shifts)
	sum := 0.0
	for _, total := range totals {
		sum += total.Hours
	}
	if sum != 21.5 {
		t.Fatalf("员工工时合计 = %v, want 21.5", sum)
	}
}

func TestSummarizeByDayIncludesOpenShifts(t *testing.T) {
	totals := SummarizeByDay(sampleShifts())

	if got := totals["2025-06-02"]; got.Hours != 13.5 || got.Cost != 240 {
		t.Errorf("2025-06-02 = %+v, want {Hours:13.5 Cost:240}", got)
	}
	// 6 月 3 日包含跨午夜班次（8h）和空班次（4h）
	if got := totals["2025-06-03"]; got.Hours != 12 || got.Cost != 160 {
		t.Errorf("2025-06-03 = %+v, want {Hours:12 Cost:160}", got)
	}
}

func TestSummarizeByPosition(t *testing.T) {
	totals := SummarizeByPosition(sampleShifts())

	if len(totals) != 2 {
		t.Fatalf("岗位数 = %d, want 2", len(totals))
	}
	if got := totals[10]; got.Hours != 15.5 {
		t.Errorf("岗位 10 工时 = %v, want 15.5", got.Hours)
	}
}

func TestSummarizeByEmployeeAdditivity(t *testing.T) {
	shiftsA := []*domain.Shift{
		{ID: 1, Date: "2025-06-02", StartTime: "08:00", EndTime: "12:00", EmployeeID: ptr(1), Cost: 60},
		{ID: 2, Date: "2025-06-02", StartTime: "12:00", EndTime: "18:30", EmployeeID: ptr(2), Cost: 97.5},
	}
	shiftsB := []*domain.Shift{
		{ID: 3, Date: "2025-06-04", StartTime: "14:00", EndTime: "22:15", BreakMinutes: 15, EmployeeID: ptr(1), Cost: 120},
	}

	combined := SummarizeByEmployee(append(append([]*domain.Shift{}, shiftsA...), shiftsB...))
	partA := SummarizeByEmployee(shiftsA)
	partB := SummarizeByEmployee(shiftsB)

	for employeeID, got := range combined {
		want := partA[employeeID].add(partB[employeeID])
		if math.Abs(got.Hours-want.Hours) > 1e-9 || math.Abs(got.Cost-want.Cost) > 1e-9 {
			t.Errorf("员工 %d 汇总不可加：%+v vs %+v", employeeID, got, want)
		}
	}
}
