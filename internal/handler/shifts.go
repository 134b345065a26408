package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
	"github.com/crewplan-dev/schedule-board/backend/internal/timeline"
	"github.com/crewplan-dev/schedule-board/backend/internal/utils"
)

func (h *Handler) GetScheduleShifts(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	shifts, err := h.repository.GetShiftsByScheduleID(schedule.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次成功", shifts)
}

// fillShiftCost 在班次分配给某个员工时按 净工时 × 时薪 计算人力成本。
// 空班次的成本为 0。
func (h *Handler) fillShiftCost(shift *domain.Shift) error {
	if !shift.Assigned() {
		shift.Cost = 0
		return nil
	}

	employee, err := h.repository.GetUserByID(*shift.EmployeeID)
	if err != nil {
		return err
	}

	shift.Cost = timeline.NetHours(shift.StartTime, shift.EndTime, shift.BreakMinutes) * employee.HourlyWage
	return nil
}

// CreateShift 创建班次。拖拽提交和普通表单提交走的是同一个入口，
// 时间字符串都要求是零填充的 24 小时制 HH:MM。
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req struct {
		Date         string `json:"date" validate:"required"`
		StartTime    string `json:"startTime" validate:"required"`
		EndTime      string `json:"endTime" validate:"required"`
		BreakMinutes int    `json:"breakMinutes" validate:"gte=0"`
		EmployeeID   *int64 `json:"employeeID"`
		PositionID   *int64 `json:"positionID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := &domain.Shift{
		ScheduleID:   schedule.ID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		EmployeeID:   req.EmployeeID,
		PositionID:   req.PositionID,
	}

	if err := utils.ValidateShiftWithSchedule(shift, schedule); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if err := utils.ValidateShiftBreak(shift); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.fillShiftCost(shift); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "指定的员工不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.CreateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建班次成功", shift)
}

// UpdateShift 修改班次，对应排班表上的配置抽屉：
// 移动日期或时间、调整休息、分配或收回员工、更换岗位。
func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Date           *string `json:"date"`
		StartTime      *string `json:"startTime"`
		EndTime        *string `json:"endTime"`
		BreakMinutes   *int    `json:"breakMinutes" validate:"omitempty,gte=0"`
		EmployeeID     *int64  `json:"employeeID"`
		ClearEmployee  bool    `json:"clearEmployee"`
		PositionID     *int64  `json:"positionID"`
		ClearPosition  bool    `json:"clearPosition"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Date != nil {
		shift.Date = *req.Date
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.BreakMinutes != nil {
		shift.BreakMinutes = *req.BreakMinutes
	}
	if req.ClearEmployee {
		shift.EmployeeID = nil
	} else if req.EmployeeID != nil {
		shift.EmployeeID = req.EmployeeID
	}
	if req.ClearPosition {
		shift.PositionID = nil
	} else if req.PositionID != nil {
		shift.PositionID = req.PositionID
	}

	if err := utils.ValidateShiftWithSchedule(shift, schedule); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if err := utils.ValidateShiftBreak(shift); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.fillShiftCost(shift); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "指定的员工不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.UpdateShift(shift); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "班次已被他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新班次成功", shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if err := h.repository.DeleteShift(shift.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除班次成功", nil)
}
