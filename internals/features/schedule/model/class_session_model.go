// file: internals/features/schedule/model/class_session_model.go
package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — session type, status, workshop payment
// =========================================================

type ClassSessionType string

const (
	ClassSessionTypeRecurring ClassSessionType = "recurring"
	ClassSessionTypeWorkshop  ClassSessionType = "workshop"
	ClassSessionTypeRental    ClassSessionType = "rental"
)

type ClassSessionStatus string

const (
	ClassSessionStatusScheduled              ClassSessionStatus = "scheduled"
	ClassSessionStatusCompleted              ClassSessionStatus = "completed"
	ClassSessionStatusCancelledLowAttendance ClassSessionStatus = "cancelled-low-attendance"
	ClassSessionStatusCancelledTeacher       ClassSessionStatus = "cancelled-teacher"
)

type WorkshopPaymentType string

const (
	WorkshopPaymentTypeFixed      WorkshopPaymentType = "fixed"
	WorkshopPaymentTypePercentage WorkshopPaymentType = "percentage"
)

// CanTransitionTo enforces the forward-only lifecycle: scheduled may
// become completed or either cancelled-* state; terminal states stay put.
func (s ClassSessionStatus) CanTransitionTo(next ClassSessionStatus) bool {
	if s != ClassSessionStatusScheduled {
		return false
	}
	switch next {
	case ClassSessionStatusCompleted,
		ClassSessionStatusCancelledLowAttendance,
		ClassSessionStatusCancelledTeacher:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type ClassSession struct {
	// PK
	ClassSessionID uuid.UUID `gorm:"column:class_session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"class_session_id"`

	ClassSessionName string           `gorm:"column:class_session_name;type:varchar(120);not null" json:"class_session_name"`
	ClassSessionType ClassSessionType `gorm:"column:class_session_type;type:varchar(20);not null;default:'recurring';index:ix_class_session_type" json:"class_session_type"`

	// Ordered teacher assignment (uuid strings); size >= 1 expected,
	// payroll clamps to 1 when empty.
	ClassSessionTeacherIDs pq.StringArray `gorm:"column:class_session_teacher_ids;type:text[];not null;default:'{}'" json:"class_session_teacher_ids"`

	ClassSessionDurationMinutes int                `gorm:"column:class_session_duration_minutes;not null;check:class_session_duration_minutes>0" json:"class_session_duration_minutes"`
	ClassSessionStatus          ClassSessionStatus `gorm:"column:class_session_status;type:varchar(30);not null;default:'scheduled';index:ix_class_session_status" json:"class_session_status"`

	// Drop-in price (coupon target for single-class purchases)
	ClassSessionPrice float64 `gorm:"column:class_session_price;not null;default:0" json:"class_session_price"`

	// Workshops only
	ClassSessionWorkshopPaymentType  *WorkshopPaymentType `gorm:"column:class_session_workshop_payment_type;type:varchar(20)" json:"class_session_workshop_payment_type,omitempty"`
	ClassSessionWorkshopPaymentValue *float64             `gorm:"column:class_session_workshop_payment_value" json:"class_session_workshop_payment_value,omitempty"`

	// Timestamps
	ClassSessionCreatedAt time.Time      `gorm:"column:class_session_created_at;not null;default:now()" json:"class_session_created_at"`
	ClassSessionUpdatedAt time.Time      `gorm:"column:class_session_updated_at;not null;default:now()" json:"class_session_updated_at"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_session_deleted_at;index" json:"-"`
}

func (ClassSession) TableName() string {
	return "class_sessions"
}

// =========================================================
// HOOKS
// =========================================================

func (m *ClassSession) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ClassSessionCreatedAt.IsZero() {
		m.ClassSessionCreatedAt = now
	}
	m.ClassSessionUpdatedAt = now
	return nil
}

func (m *ClassSession) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ClassSessionUpdatedAt = time.Now()
	return nil
}
