// file: internals/features/payments/model/student_payment_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — invoice status
// =========================================================

type StudentPaymentStatus string

const (
	StudentPaymentStatusPending StudentPaymentStatus = "pending"
	StudentPaymentStatusDeposit StudentPaymentStatus = "deposit"
	StudentPaymentStatusPaid    StudentPaymentStatus = "paid"
)

// ErrInvalidAmount: amount paid would exceed the invoice total. Rejected
// before persistence, never silently clamped.
var ErrInvalidAmount = errors.New("amount paid exceeds invoice total")

// =========================================================
// MODEL — invoice. Invariants: amount_paid <= total always,
// amount_due = total - amount_paid, status paid <=> due 0.
// =========================================================

type StudentPayment struct {
	// PK
	StudentPaymentID uuid.UUID `gorm:"column:student_payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_payment_id"`

	// FK → users(user_id)
	StudentPaymentStudentID uuid.UUID `gorm:"column:student_payment_student_id;type:uuid;not null;index:ix_student_payment_student" json:"student_payment_student_id"`
	// FK → membership_plans(membership_plan_id)
	StudentPaymentPlanID uuid.UUID `gorm:"column:student_payment_plan_id;type:uuid;not null;index" json:"student_payment_plan_id"`

	StudentPaymentTotalAmount float64 `gorm:"column:student_payment_total_amount;not null;check:student_payment_total_amount>=0" json:"student_payment_total_amount"`
	StudentPaymentAmountPaid  float64 `gorm:"column:student_payment_amount_paid;not null;default:0" json:"student_payment_amount_paid"`
	StudentPaymentAmountDue   float64 `gorm:"column:student_payment_amount_due;not null" json:"student_payment_amount_due"`

	StudentPaymentStatus StudentPaymentStatus `gorm:"column:student_payment_status;type:varchar(20);not null;default:'pending';index:ix_student_payment_status" json:"student_payment_status"`

	StudentPaymentInvoiceDate time.Time `gorm:"column:student_payment_invoice_date;not null;default:now()" json:"student_payment_invoice_date"`

	// Timestamps
	StudentPaymentCreatedAt time.Time `gorm:"column:student_payment_created_at;not null;default:now()" json:"student_payment_created_at"`
	StudentPaymentUpdatedAt time.Time `gorm:"column:student_payment_updated_at;not null;default:now()" json:"student_payment_updated_at"`
}

func (StudentPayment) TableName() string {
	return "student_payments"
}

// SetAmountPaid records a staff payment update and rederives due and
// status. Overpaying is an error, not a clamp.
func (m *StudentPayment) SetAmountPaid(paid float64) error {
	if paid < 0 || paid > m.StudentPaymentTotalAmount {
		return ErrInvalidAmount
	}
	m.StudentPaymentAmountPaid = paid
	m.StudentPaymentAmountDue = m.StudentPaymentTotalAmount - paid

	switch {
	case m.StudentPaymentAmountDue == 0:
		m.StudentPaymentStatus = StudentPaymentStatusPaid
	case paid > 0:
		m.StudentPaymentStatus = StudentPaymentStatusDeposit
	default:
		m.StudentPaymentStatus = StudentPaymentStatusPending
	}
	return nil
}

// =========================================================
// HOOKS
// =========================================================

func (m *StudentPayment) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentPaymentCreatedAt.IsZero() {
		m.StudentPaymentCreatedAt = now
	}
	if m.StudentPaymentInvoiceDate.IsZero() {
		m.StudentPaymentInvoiceDate = now
	}
	m.StudentPaymentUpdatedAt = now
	return nil
}

func (m *StudentPayment) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentPaymentUpdatedAt = time.Now()
	return nil
}
