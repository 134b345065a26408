package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
	"github.com/crewplan-dev/schedule-board/backend/internal/labor"
	"github.com/crewplan-dev/schedule-board/backend/internal/utils"
)

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name" validate:"required"`
		WeekStart string `json:"weekStart" validate:"required"`
		MinHour   *int   `json:"minHour" validate:"omitempty,gte=0,lte=24"`
		MaxHour   *int   `json:"maxHour" validate:"omitempty,gte=0,lte=24"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule := &domain.Schedule{
		Name:      req.Name,
		WeekStart: req.WeekStart,
		MinHour:   h.config.Timeline.DefaultMinHour,
		MaxHour:   h.config.Timeline.DefaultMaxHour,
	}
	if req.MinHour != nil {
		schedule.MinHour = *req.MinHour
	}
	if req.MaxHour != nil {
		schedule.MaxHour = *req.MaxHour
	}

	if err := utils.ValidateScheduleWindow(schedule); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.CreateSchedule(schedule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建排班表成功", schedule)
}

func (h *Handler) GetAllSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.repository.GetAllSchedules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有排班表成功", schedules)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)
	h.successResponse(w, r, "获取排班表成功", schedule)
}

func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req struct {
		Name    *string `json:"name"`
		MinHour *int    `json:"minHour" validate:"omitempty,gte=0,lte=24"`
		MaxHour *int    `json:"maxHour" validate:"omitempty,gte=0,lte=24"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 已发布的排班表只允许改名，时间轴窗口保持不变
	if schedule.IsPublished && (req.MinHour != nil || req.MaxHour != nil) {
		h.errorResponse(w, r, "排班表已发布，禁止修改时间轴窗口")
		return
	}

	if req.Name != nil {
		schedule.Name = *req.Name
	}
	if req.MinHour != nil {
		schedule.MinHour = *req.MinHour
	}
	if req.MaxHour != nil {
		schedule.MaxHour = *req.MaxHour
	}

	if err := utils.ValidateScheduleWindow(schedule); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.UpdateSchedule(schedule); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "排班表已被他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新排班表成功", schedule)
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	if err := h.repository.DeleteSchedule(schedule.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除排班表成功", nil)
}

// PublishSchedule 发布排班表：锁定排班表并给每个排到班的员工发一封排班通知邮件。
func (h *Handler) PublishSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	if schedule.IsPublished {
		h.errorResponse(w, r, "排班表已发布")
		return
	}

	schedule.IsPublished = true
	if err := h.repository.UpdateSchedule(schedule); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "排班表已被他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

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
	usersByID := make(map[int64]*domain.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	shiftCounts := make(map[int64]int)
	for _, shift := range shifts {
		if shift.Assigned() {
			shiftCounts[*shift.EmployeeID]++
		}
	}

	for employeeID, totals := range labor.SummarizeByEmployee(shifts) {
		employee, exists := usersByID[employeeID]
		if !exists {
			continue
		}

		mailMessage := domain.MailMessage{
			Type: "schedule_published",
			To:   employee.Email,
			Data: domain.SchedulePublishedMailData{
				FullName:     employee.FullName,
				ScheduleName: schedule.Name,
				WeekStart:    schedule.WeekStart,
				ShiftCount:   shiftCounts[employeeID],
				TotalHours:   totals.Hours,
			},
		}

		if err := h.publishMail(mailMessage); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "发布排班表成功", schedule)
}

// GetLaborSummary 返回排班表的工时和人力成本汇总。
// 汇总只依赖当前的班次集合，每次请求都重新计算。
func (h *Handler) GetLaborSummary(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	shifts, err := h.repository.GetShiftsByScheduleID(schedule.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	summary := struct {
		ByEmployee map[int64]labor.Totals  `json:"byEmployee"`
		ByDay      map[string]labor.Totals `json:"byDay"`
		ByPosition map[int64]labor.Totals  `json:"byPosition"`
		Open       labor.Totals            `json:"open"`
	}{
		ByEmployee: labor.SummarizeByEmployee(shifts),
		ByDay:      labor.SummarizeByDay(shifts),
		ByPosition: labor.SummarizeByPosition(shifts),
		Open:       labor.SummarizeOpen(shifts),
	}

	h.successResponse(w, r, "获取工时汇总成功", summary)
}
