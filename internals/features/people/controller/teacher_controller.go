// file: internals/features/people/controller/teacher_controller.go
package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "github.com/OscarGirao89/FusionArte-sub000/internals/features/people/dto"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/people/model"
	payrollService "github.com/OscarGirao89/FusionArte-sub000/internals/features/payroll/service"
	helper "github.com/OscarGirao89/FusionArte-sub000/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

/* =======================================================
   TEACHERS (ADMIN)
======================================================= */

// POST /teachers
func (h *Handler) CreateTeacher(c *fiber.Ctx) error {
	var in dto.TeacherCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	// the scheme blob must decode to a known variant
	if _, err := payrollService.DecodeScheme(in.TeacherPaymentDetails); err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}

	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "teacher created", dto.ToTeacherResponse(m))
}

// PATCH /teachers/:id
func (h *Handler) UpdateTeacher(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.TeacherUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if len(in.TeacherPaymentDetails) > 0 {
		if _, err := payrollService.DecodeScheme(in.TeacherPaymentDetails); err != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
	}

	var m model.Teacher
	if err := h.DB.First(&m, "teacher_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "teacher not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	in.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "teacher updated", dto.ToTeacherResponse(m))
}

// GET /teachers/:id
func (h *Handler) GetTeacher(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m model.Teacher
	if err := h.DB.First(&m, "teacher_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "teacher not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToTeacherResponse(m))
}

// GET /teachers?partner=true|false
func (h *Handler) ListTeachers(c *fiber.Ctx) error {
	q := h.DB.Model(&model.Teacher{})
	if v := c.Query("partner"); v != "" {
		q = q.Where("teacher_is_partner = ?", v == "true")
	}
	var ms []model.Teacher
	if err := q.Order("teacher_name asc").Find(&ms).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToTeacherResponses(ms))
}

// DELETE /teachers/:id (soft delete)
func (h *Handler) DeleteTeacher(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.Teacher{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "teacher not found")
	}
	return helper.JsonDeleted(c, "teacher deleted", fiber.Map{"teacher_id": id})
}
