// file: internals/features/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/OscarGirao89/FusionArte-sub000/internals/features/payments/model"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/payments/service"
)

/* =======================================================
   PURCHASES & INVOICES — DTO
======================================================= */

// Purchase request (POST /purchases)
type PurchaseCreateDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	PlanID    uuid.UUID `json:"plan_id" validate:"required"`

	// custom packs priced by tier/slider
	TotalPriceOverride *float64 `json:"total_price_override,omitempty" validate:"omitempty,min=0"`
	ClassCountOverride *int     `json:"class_count_override,omitempty" validate:"omitempty,min=1"`

	CouponCode *string `json:"coupon_code,omitempty" validate:"omitempty,max=40"`
}

// Staff payment update (PATCH /payments/:id)
type PaymentUpdateDTO struct {
	AmountPaid float64 `json:"amount_paid" validate:"min=0"`
}

// Response
type StudentPaymentResponse struct {
	StudentPaymentID          uuid.UUID `json:"student_payment_id"`
	StudentPaymentStudentID   uuid.UUID `json:"student_payment_student_id"`
	StudentPaymentPlanID      uuid.UUID `json:"student_payment_plan_id"`
	StudentPaymentTotalAmount float64   `json:"student_payment_total_amount"`
	StudentPaymentAmountPaid  float64   `json:"student_payment_amount_paid"`
	StudentPaymentAmountDue   float64   `json:"student_payment_amount_due"`
	StudentPaymentStatus      string    `json:"student_payment_status"`
	StudentPaymentInvoiceDate time.Time `json:"student_payment_invoice_date"`
}

/* =======================================================
   MAPPERS
======================================================= */

func (in PurchaseCreateDTO) ToInput() service.PurchaseInput {
	return service.PurchaseInput{
		StudentID:          in.StudentID,
		PlanID:             in.PlanID,
		TotalPriceOverride: in.TotalPriceOverride,
		ClassCountOverride: in.ClassCountOverride,
		CouponCode:         in.CouponCode,
	}
}

func ToStudentPaymentResponse(m model.StudentPayment) StudentPaymentResponse {
	return StudentPaymentResponse{
		StudentPaymentID:          m.StudentPaymentID,
		StudentPaymentStudentID:   m.StudentPaymentStudentID,
		StudentPaymentPlanID:      m.StudentPaymentPlanID,
		StudentPaymentTotalAmount: m.StudentPaymentTotalAmount,
		StudentPaymentAmountPaid:  m.StudentPaymentAmountPaid,
		StudentPaymentAmountDue:   m.StudentPaymentAmountDue,
		StudentPaymentStatus:      string(m.StudentPaymentStatus),
		StudentPaymentInvoiceDate: m.StudentPaymentInvoiceDate,
	}
}

func ToStudentPaymentResponses(ms []model.StudentPayment) []StudentPaymentResponse {
	out := make([]StudentPaymentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentPaymentResponse(m))
	}
	return out
}
