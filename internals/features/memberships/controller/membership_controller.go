// file: internals/features/memberships/controller/membership_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/dto"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/model"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/service"
	helper "github.com/OscarGirao89/FusionArte-sub000/internals/helpers"
	authmw "github.com/OscarGirao89/FusionArte-sub000/internals/middlewares/auth"
)

type Handler struct {
	DB *gorm.DB
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

/* =======================================================
   MEMBERSHIP PLANS (ADMIN)
======================================================= */

// POST /plans
func (h *Handler) CreatePlan(c *fiber.Ctx) error {
	var in dto.MembershipPlanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := in.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	// reject plans whose validity config can never resolve
	if _, err := service.ResolveValidity(m, time.Now(), nil); err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "plan created", dto.ToMembershipPlanResponse(m))
}

// PATCH /plans/:id
func (h *Handler) UpdatePlan(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.MembershipPlanUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.MembershipPlan
	if err := h.DB.First(&m, "membership_plan_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "plan not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := in.Apply(&m); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if _, err := service.ResolveValidity(m, time.Now(), nil); err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "plan updated", dto.ToMembershipPlanResponse(m))
}

// GET /plans/:id
func (h *Handler) GetPlan(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m model.MembershipPlan
	if err := h.DB.First(&m, "membership_plan_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "plan not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToMembershipPlanResponse(m))
}

// GET /plans
func (h *Handler) ListPlans(c *fiber.Ctx) error {
	var ms []model.MembershipPlan
	if err := h.DB.Order("membership_plan_name asc").Find(&ms).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToMembershipPlanResponses(ms))
}

// DELETE /plans/:id (soft delete)
func (h *Handler) DeletePlan(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.MembershipPlan{}, "membership_plan_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "plan not found")
	}
	return helper.JsonDeleted(c, "plan deleted", fiber.Map{"membership_plan_id": id})
}

// POST /plans/:id/validity-preview
// Resolves the validity window without purchasing (purchase form helper).
func (h *Handler) ValidityPreview(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.ValidityPreviewDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.MembershipPlan
	if err := h.DB.First(&m, "membership_plan_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "plan not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	purchasedAt := time.Now()
	if in.PurchasedAt != nil {
		purchasedAt = *in.PurchasedAt
	}
	v, err := service.ResolveValidity(m, purchasedAt, in.ClassCountOverride)
	if err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonOK(c, "ok", v)
}

/* =======================================================
   STUDENT MEMBERSHIPS
======================================================= */

// GET /memberships/user/:user_id — the single active row, if any.
func (h *Handler) GetMembershipByUser(c *fiber.Ctx) error {
	userID, err := parseUUID(c, "user_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid user_id")
	}
	var m model.StudentMembership
	if err := h.DB.First(&m, "student_membership_user_id = ?", userID).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "no membership for this student")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentMembershipResponse(m))
}

// GET /me/membership — membership of the authenticated student.
func (h *Handler) MyMembership(c *fiber.Ctx) error {
	uid, _ := c.Locals(authmw.LocUserID).(string)
	userID, err := uuid.Parse(uid)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var m model.StudentMembership
	if err := h.DB.First(&m, "student_membership_user_id = ?", userID).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "no membership for this student")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentMembershipResponse(m))
}
