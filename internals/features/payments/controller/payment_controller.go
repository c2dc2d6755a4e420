// file: internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	membershipDTO "github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/dto"
	dto "github.com/OscarGirao89/FusionArte-sub000/internals/features/payments/dto"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/payments/model"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/payments/service"
	helper "github.com/OscarGirao89/FusionArte-sub000/internals/helpers"
	authmw "github.com/OscarGirao89/FusionArte-sub000/internals/middlewares/auth"
)

type Handler struct {
	DB *gorm.DB
}

/* =======================================================
   PURCHASES (ADMIN)
======================================================= */

// POST /purchases — invoice + membership in one transaction.
func (h *Handler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.PurchaseCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	svc := &service.PurchaseService{DB: h.DB}
	res, err := svc.Purchase(c.UserContext(), in.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound), errors.Is(err, service.ErrCouponNotFound):
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		case helper.IsUniqueViolation(err):
			// concurrent purchase for the same student lost the race
			return helper.JsonError(c, http.StatusConflict, "another purchase for this student is in progress")
		default:
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c, "purchase completed", fiber.Map{
		"invoice":    dto.ToStudentPaymentResponse(res.Invoice),
		"membership": membershipDTO.ToStudentMembershipResponse(res.Membership),
		"coupon":     res.Coupon,
	})
}

/* =======================================================
   INVOICES (ADMIN)
======================================================= */

// PATCH /payments/:id — staff records a received amount.
func (h *Handler) UpdatePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.PaymentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.StudentPayment
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "student_payment_id = ?", id).Error; err != nil {
			return err
		}
		if err := m.SetAmountPaid(in.AmountPaid); err != nil {
			return err
		}
		return tx.Save(&m).Error
	}); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "invoice not found")
		}
		if errors.Is(err, model.ErrInvalidAmount) {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "payment updated", dto.ToStudentPaymentResponse(m))
}

// GET /payments/:id
func (h *Handler) GetPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m model.StudentPayment
	if err := h.DB.First(&m, "student_payment_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentPaymentResponse(m))
}

// GET /payments?student_id=...&status=...
func (h *Handler) ListPayments(c *fiber.Ctx) error {
	q := h.DB.Model(&model.StudentPayment{})
	if v := c.Query("student_id"); v != "" {
		sid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("student_payment_student_id = ?", sid)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("student_payment_status = ?", v)
	}
	var ms []model.StudentPayment
	if err := q.Order("student_payment_invoice_date desc").Find(&ms).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToStudentPaymentResponses(ms))
}

// GET /me/invoices — invoices of the authenticated student.
func (h *Handler) MyInvoices(c *fiber.Ctx) error {
	uid, _ := c.Locals(authmw.LocUserID).(string)
	sid, err := uuid.Parse(uid)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var ms []model.StudentPayment
	if err := h.DB.
		Where("student_payment_student_id = ?", sid).
		Order("student_payment_invoice_date desc").
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToStudentPaymentResponses(ms))
}
