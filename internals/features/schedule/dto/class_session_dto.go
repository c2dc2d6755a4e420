// file: internals/features/schedule/dto/class_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/OscarGirao89/FusionArte-sub000/internals/features/schedule/model"
)

/* =======================================================
   CLASS SESSIONS — DTO
======================================================= */

// Create
type ClassSessionCreateDTO struct {
	ClassSessionName string `json:"class_session_name" validate:"required,max=120"`
	ClassSessionType string `json:"class_session_type" validate:"required,oneof=recurring workshop rental"`

	ClassSessionTeacherIDs []uuid.UUID `json:"class_session_teacher_ids" validate:"required,min=1,dive,required"`

	ClassSessionDurationMinutes int     `json:"class_session_duration_minutes" validate:"required,min=1"`
	ClassSessionPrice           float64 `json:"class_session_price" validate:"min=0"`

	// workshops only
	ClassSessionWorkshopPaymentType  *string  `json:"class_session_workshop_payment_type,omitempty" validate:"omitempty,oneof=fixed percentage"`
	ClassSessionWorkshopPaymentValue *float64 `json:"class_session_workshop_payment_value,omitempty" validate:"omitempty,min=0"`
}

// Update (partial)
type ClassSessionUpdateDTO struct {
	ClassSessionName            *string     `json:"class_session_name,omitempty" validate:"omitempty,max=120"`
	ClassSessionTeacherIDs      []uuid.UUID `json:"class_session_teacher_ids,omitempty" validate:"omitempty,min=1"`
	ClassSessionDurationMinutes *int        `json:"class_session_duration_minutes,omitempty" validate:"omitempty,min=1"`
	ClassSessionPrice           *float64    `json:"class_session_price,omitempty" validate:"omitempty,min=0"`

	ClassSessionWorkshopPaymentType  *string  `json:"class_session_workshop_payment_type,omitempty" validate:"omitempty,oneof=fixed percentage"`
	ClassSessionWorkshopPaymentValue *float64 `json:"class_session_workshop_payment_value,omitempty" validate:"omitempty,min=0"`
}

// Status change (attendance/confirmation workflow)
type ClassSessionStatusDTO struct {
	ClassSessionStatus string `json:"class_session_status" validate:"required,oneof=completed cancelled-low-attendance cancelled-teacher"`
}

// Response
type ClassSessionResponse struct {
	ClassSessionID              uuid.UUID `json:"class_session_id"`
	ClassSessionName            string    `json:"class_session_name"`
	ClassSessionType            string    `json:"class_session_type"`
	ClassSessionTeacherIDs      []string  `json:"class_session_teacher_ids"`
	ClassSessionDurationMinutes int       `json:"class_session_duration_minutes"`
	ClassSessionStatus          string    `json:"class_session_status"`
	ClassSessionPrice           float64   `json:"class_session_price"`

	ClassSessionWorkshopPaymentType  *string  `json:"class_session_workshop_payment_type,omitempty"`
	ClassSessionWorkshopPaymentValue *float64 `json:"class_session_workshop_payment_value,omitempty"`

	ClassSessionCreatedAt time.Time `json:"class_session_created_at"`
	ClassSessionUpdatedAt time.Time `json:"class_session_updated_at"`
}

/* =======================================================
   MAPPERS
======================================================= */

func (in ClassSessionCreateDTO) ToModel() model.ClassSession {
	m := model.ClassSession{
		ClassSessionName:            in.ClassSessionName,
		ClassSessionType:            model.ClassSessionType(in.ClassSessionType),
		ClassSessionTeacherIDs:      uuidsToStrings(in.ClassSessionTeacherIDs),
		ClassSessionDurationMinutes: in.ClassSessionDurationMinutes,
		ClassSessionStatus:          model.ClassSessionStatusScheduled,
		ClassSessionPrice:           in.ClassSessionPrice,
	}
	if in.ClassSessionWorkshopPaymentType != nil {
		t := model.WorkshopPaymentType(*in.ClassSessionWorkshopPaymentType)
		m.ClassSessionWorkshopPaymentType = &t
	}
	m.ClassSessionWorkshopPaymentValue = in.ClassSessionWorkshopPaymentValue
	return m
}

func (in ClassSessionUpdateDTO) Apply(m *model.ClassSession) {
	if in.ClassSessionName != nil {
		m.ClassSessionName = *in.ClassSessionName
	}
	if len(in.ClassSessionTeacherIDs) > 0 {
		m.ClassSessionTeacherIDs = uuidsToStrings(in.ClassSessionTeacherIDs)
	}
	if in.ClassSessionDurationMinutes != nil {
		m.ClassSessionDurationMinutes = *in.ClassSessionDurationMinutes
	}
	if in.ClassSessionPrice != nil {
		m.ClassSessionPrice = *in.ClassSessionPrice
	}
	if in.ClassSessionWorkshopPaymentType != nil {
		t := model.WorkshopPaymentType(*in.ClassSessionWorkshopPaymentType)
		m.ClassSessionWorkshopPaymentType = &t
	}
	if in.ClassSessionWorkshopPaymentValue != nil {
		m.ClassSessionWorkshopPaymentValue = in.ClassSessionWorkshopPaymentValue
	}
}

func ToClassSessionResponse(m model.ClassSession) ClassSessionResponse {
	resp := ClassSessionResponse{
		ClassSessionID:              m.ClassSessionID,
		ClassSessionName:            m.ClassSessionName,
		ClassSessionType:            string(m.ClassSessionType),
		ClassSessionTeacherIDs:      []string(m.ClassSessionTeacherIDs),
		ClassSessionDurationMinutes: m.ClassSessionDurationMinutes,
		ClassSessionStatus:          string(m.ClassSessionStatus),
		ClassSessionPrice:           m.ClassSessionPrice,
		ClassSessionCreatedAt:       m.ClassSessionCreatedAt,
		ClassSessionUpdatedAt:       m.ClassSessionUpdatedAt,
	}
	if m.ClassSessionWorkshopPaymentType != nil {
		t := string(*m.ClassSessionWorkshopPaymentType)
		resp.ClassSessionWorkshopPaymentType = &t
	}
	resp.ClassSessionWorkshopPaymentValue = m.ClassSessionWorkshopPaymentValue
	return resp
}

func ToClassSessionResponses(ms []model.ClassSession) []ClassSessionResponse {
	out := make([]ClassSessionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToClassSessionResponse(m))
	}
	return out
}

func uuidsToStrings(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
