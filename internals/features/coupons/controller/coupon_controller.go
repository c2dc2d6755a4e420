// file: internals/features/coupons/controller/coupon_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/dto"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/model"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/service"
	helper "github.com/OscarGirao89/FusionArte-sub000/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

/* =======================================================
   COUPONS (ADMIN)
======================================================= */

// POST /coupons
func (h *Handler) CreateCoupon(c *fiber.Ctx) error {
	var in dto.CouponCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict, "coupon code already exists")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "coupon created", dto.ToCouponResponse(m))
}

// PATCH /coupons/:id
func (h *Handler) UpdateCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.CouponUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.Coupon
	if err := h.DB.First(&m, "coupon_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "coupon not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	in.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "coupon updated", dto.ToCouponResponse(m))
}

// GET /coupons
func (h *Handler) ListCoupons(c *fiber.Ctx) error {
	var ms []model.Coupon
	if err := h.DB.Order("coupon_created_at desc").Find(&ms).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToCouponResponses(ms))
}

// DELETE /coupons/:id (soft delete)
func (h *Handler) DeleteCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.Coupon{}, "coupon_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "coupon not found")
	}
	return helper.JsonDeleted(c, "coupon deleted", fiber.Map{"coupon_id": id})
}

// POST /coupons/validate — resolve the discounted price for a target.
func (h *Handler) ValidateCoupon(c *fiber.Ctx) error {
	var in dto.CouponValidateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.Coupon
	if err := h.DB.First(&m, "coupon_code = ?", in.CouponCode).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "coupon not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var d service.Discount
	if in.TargetKind == string(service.TargetPlan) {
		d = service.ApplyToPlan(m, in.TargetID, in.Price, time.Now())
	} else {
		d = service.ApplyToClass(m, in.TargetID, in.Price, time.Now())
	}
	return helper.JsonOK(c, "ok", d)
}
