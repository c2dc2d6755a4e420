// file: internals/features/payroll/controller/payroll_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teacherModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/people/model"
	dto "github.com/OscarGirao89/FusionArte-sub000/internals/features/payroll/dto"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/payroll/service"
	scheduleModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/schedule/model"
	helper "github.com/OscarGirao89/FusionArte-sub000/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

/* =======================================================
   PAYROLL (ADMIN)
======================================================= */

// GET /payroll/studio-expenses
// Settles every non-partner teacher and reports the studio-wide expense.
func (h *Handler) StudioExpenses(c *fiber.Ctx) error {
	var teachers []teacherModel.Teacher
	if err := h.DB.Where("teacher_is_partner = ?", false).
		Order("teacher_name asc").Find(&teachers).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	resp := dto.StudioExpensesResponse{Settlements: []service.Settlement{}}
	for _, t := range teachers {
		person, err := dto.ToPerson(t)
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		classes, err := h.sessionsForTeacher(t.TeacherID)
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		s := service.SettleStudioExpenses(person, classes)
		resp.Settlements = append(resp.Settlements, s)
		resp.TotalExpense += s.Total
	}
	return helper.JsonOK(c, "ok", resp)
}

// GET /payroll/partners/:id/income
func (h *Handler) PartnerIncome(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var t teacherModel.Teacher
	if err := h.DB.First(&t, "teacher_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "partner not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !t.TeacherIsPartner {
		return helper.JsonError(c, http.StatusBadRequest, "teacher is not a partner")
	}

	person, err := dto.ToPerson(t)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	classes, err := h.sessionsForTeacher(t.TeacherID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", service.SettlePartnerIncome(person, classes))
}

func (h *Handler) sessionsForTeacher(id uuid.UUID) ([]service.Class, error) {
	var sessions []scheduleModel.ClassSession
	if err := h.DB.Where("? = ANY(class_session_teacher_ids)", id.String()).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return dto.ToClasses(sessions), nil
}
