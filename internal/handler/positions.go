package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
)

func (h *Handler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name" validate:"required"`
		Zone  string `json:"zone" validate:"required,oneof=前厅 后厨"`
		Color string `json:"color" validate:"required,hexcolor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	position := &domain.Position{
		Name:  req.Name,
		Zone:  domain.Zone(req.Zone),
		Color: req.Color,
	}

	if err := h.repository.CreatePosition(position); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建岗位成功", position)
}

func (h *Handler) GetAllPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.repository.GetAllPositions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有岗位成功", positions)
}

func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	position := r.Context().Value(PositionCtx).(*domain.Position)
	h.successResponse(w, r, "获取岗位成功", position)
}

func (h *Handler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	position := r.Context().Value(PositionCtx).(*domain.Position)

	var req struct {
		Name  *string `json:"name"`
		Zone  *string `json:"zone" validate:"omitempty,oneof=前厅 后厨"`
		Color *string `json:"color" validate:"omitempty,hexcolor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		position.Name = *req.Name
	}
	if req.Zone != nil {
		position.Zone = domain.Zone(*req.Zone)
	}
	if req.Color != nil {
		position.Color = *req.Color
	}

	if err := h.repository.UpdatePosition(position); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "岗位信息已被他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新岗位成功", position)
}

func (h *Handler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	position := r.Context().Value(PositionCtx).(*domain.Position)

	if err := h.repository.DeletePosition(position.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除岗位成功", nil)
}
