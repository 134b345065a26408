package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
	"github.com/crewplan-dev/schedule-board/backend/internal/labor"
	"github.com/crewplan-dev/schedule-board/backend/internal/timeline"
)

// ExportSchedule 把整周的排班导出为 xlsx：
// 一行一个员工，一列一天，末尾是每日工时与成本的合计行。
func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	shifts, err := h.repository.GetShiftsByScheduleID(schedule.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	users, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	positions, err := h.repository.GetAllPositions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	positionNames := make(map[int64]string, len(positions))
	for _, position := range positions {
		positionNames[position.ID] = position.Name
	}

	weekStart, err := time.Parse("2006-01-02", schedule.WeekStart)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 单元格内容形如 "9a-5:30p 收银"，同一天多个班次时换行
	shiftLabel := func(shift *domain.Shift) string {
		label := timeline.FormatTimeShort(shift.StartTime) + "-" + timeline.FormatTimeShort(shift.EndTime)
		if shift.PositionID != nil {
			if name, exists := positionNames[*shift.PositionID]; exists {
				label += " " + name
			}
		}
		return label
	}

	type cellKey struct {
		employeeID int64 // 空班次行用 0
		date       string
	}
	cells := make(map[cellKey]string)
	for _, shift := range shifts {
		key := cellKey{date: shift.Date}
		if shift.Assigned() {
			key.employeeID = *shift.EmployeeID
		}
		if cells[key] != "" {
			cells[key] += "\n"
		}
		cells[key] += shiftLabel(shift)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := "排班表"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	setCell := func(col, row int, value any) {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return
		}
		_ = f.SetCellValue(sheet, cell, value)
	}

	// 表头：员工 + 一周七天
	setCell(1, 1, "员工")
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		dates[i] = day.Format("2006-01-02")
		setCell(i+2, 1, day.Format("01-02 Mon"))
	}

	row := 2
	for _, user := range users {
		if !user.IsActive {
			continue
		}

		hasShift := false
		for i, date := range dates {
			if label, exists := cells[cellKey{employeeID: user.ID, date: date}]; exists {
				setCell(i+2, row, label)
				hasShift = true
			}
		}
		if !hasShift {
			continue
		}

		setCell(1, row, user.FullName)
		row++
	}

	// 空班次单独一行
	hasOpen := false
	for i, date := range dates {
		if label, exists := cells[cellKey{date: date}]; exists {
			setCell(i+2, row, label)
			hasOpen = true
		}
	}
	if hasOpen {
		setCell(1, row, "空班次")
		row++
	}

	// 每日合计行
	byDay := labor.SummarizeByDay(shifts)
	setCell(1, row, "合计")
	for i, date := range dates {
		totals := byDay[date]
		setCell(i+2, row, fmt.Sprintf("%.2f 小时 / ¥%.2f", totals.Hours, totals.Cost))
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=schedule_%s.xlsx", schedule.WeekStart))

	if err := f.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}
