// file: internals/features/schedule/controller/class_session_controller.go
package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "github.com/OscarGirao89/FusionArte-sub000/internals/features/schedule/dto"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/schedule/model"
	helper "github.com/OscarGirao89/FusionArte-sub000/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

/* =======================================================
   CLASS SESSIONS (ADMIN)
======================================================= */

// POST /sessions
func (h *Handler) CreateSession(c *fiber.Ctx) error {
	var in dto.ClassSessionCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	// workshop sessions must carry their payment policy
	if in.ClassSessionType == string(model.ClassSessionTypeWorkshop) &&
		(in.ClassSessionWorkshopPaymentType == nil || in.ClassSessionWorkshopPaymentValue == nil) {
		return helper.JsonError(c, http.StatusUnprocessableEntity, "workshop sessions require a payment type and value")
	}

	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "session created", dto.ToClassSessionResponse(m))
}

// PATCH /sessions/:id
func (h *Handler) UpdateSession(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.ClassSessionUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ClassSession
	if err := h.DB.First(&m, "class_session_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "session not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	in.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "session updated", dto.ToClassSessionResponse(m))
}

// POST /sessions/:id/status — attendance/confirmation workflow endpoint.
// Transitions are forward-only; terminal states are immutable.
func (h *Handler) UpdateSessionStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.ClassSessionStatusDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	next := model.ClassSessionStatus(in.ClassSessionStatus)

	var m model.ClassSession
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "class_session_id = ?", id).Error; err != nil {
			return err
		}
		if !m.ClassSessionStatus.CanTransitionTo(next) {
			return fiber.NewError(http.StatusConflict, "invalid status transition")
		}
		m.ClassSessionStatus = next
		return tx.Save(&m).Error
	}); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "session not found")
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "session status updated", dto.ToClassSessionResponse(m))
}

// GET /sessions/:id
func (h *Handler) GetSession(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m model.ClassSession
	if err := h.DB.First(&m, "class_session_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "session not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToClassSessionResponse(m))
}

// GET /sessions?teacher_id=...&status=...
func (h *Handler) ListSessions(c *fiber.Ctx) error {
	q := h.DB.Model(&model.ClassSession{})
	if v := c.Query("teacher_id"); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid teacher_id")
		}
		q = q.Where("? = ANY(class_session_teacher_ids)", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("class_session_status = ?", v)
	}
	var ms []model.ClassSession
	if err := q.Order("class_session_created_at desc").Find(&ms).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToClassSessionResponses(ms))
}

// DELETE /sessions/:id (soft delete)
func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.ClassSession{}, "class_session_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "session not found")
	}
	return helper.JsonDeleted(c, "session deleted", fiber.Map{"class_session_id": id})
}
