// file: internals/features/people/dto/teacher_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/OscarGirao89/FusionArte-sub000/internals/features/people/model"
)

/* =======================================================
   TEACHERS — DTO
======================================================= */

// Create
type TeacherCreateDTO struct {
	TeacherName      string `json:"teacher_name" validate:"required,max=120"`
	TeacherEmail     string `json:"teacher_email" validate:"required,email,max=120"`
	TeacherIsPartner bool   `json:"teacher_is_partner"`

	// scheme variant blob, validated against the payroll decoder
	TeacherPaymentDetails json.RawMessage `json:"teacher_payment_details,omitempty"`
}

// Update (partial)
type TeacherUpdateDTO struct {
	TeacherName      *string `json:"teacher_name,omitempty" validate:"omitempty,max=120"`
	TeacherEmail     *string `json:"teacher_email,omitempty" validate:"omitempty,email,max=120"`
	TeacherIsPartner *bool   `json:"teacher_is_partner,omitempty"`

	TeacherPaymentDetails json.RawMessage `json:"teacher_payment_details,omitempty"`
}

// Response
type TeacherResponse struct {
	TeacherID             uuid.UUID       `json:"teacher_id"`
	TeacherName           string          `json:"teacher_name"`
	TeacherEmail          string          `json:"teacher_email"`
	TeacherIsPartner      bool            `json:"teacher_is_partner"`
	TeacherPaymentDetails json.RawMessage `json:"teacher_payment_details,omitempty"`
	TeacherCreatedAt      time.Time       `json:"teacher_created_at"`
	TeacherUpdatedAt      time.Time       `json:"teacher_updated_at"`
}

/* =======================================================
   MAPPERS
======================================================= */

func (in TeacherCreateDTO) ToModel() model.Teacher {
	m := model.Teacher{
		TeacherName:      in.TeacherName,
		TeacherEmail:     in.TeacherEmail,
		TeacherIsPartner: in.TeacherIsPartner,
	}
	if len(in.TeacherPaymentDetails) > 0 {
		m.TeacherPaymentDetails = datatypes.JSON(in.TeacherPaymentDetails)
	}
	return m
}

func (in TeacherUpdateDTO) Apply(m *model.Teacher) {
	if in.TeacherName != nil {
		m.TeacherName = *in.TeacherName
	}
	if in.TeacherEmail != nil {
		m.TeacherEmail = *in.TeacherEmail
	}
	if in.TeacherIsPartner != nil {
		m.TeacherIsPartner = *in.TeacherIsPartner
	}
	if len(in.TeacherPaymentDetails) > 0 {
		m.TeacherPaymentDetails = datatypes.JSON(in.TeacherPaymentDetails)
	}
}

func ToTeacherResponse(m model.Teacher) TeacherResponse {
	return TeacherResponse{
		TeacherID:             m.TeacherID,
		TeacherName:           m.TeacherName,
		TeacherEmail:          m.TeacherEmail,
		TeacherIsPartner:      m.TeacherIsPartner,
		TeacherPaymentDetails: json.RawMessage(m.TeacherPaymentDetails),
		TeacherCreatedAt:      m.TeacherCreatedAt,
		TeacherUpdatedAt:      m.TeacherUpdatedAt,
	}
}

func ToTeacherResponses(ms []model.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTeacherResponse(m))
	}
	return out
}
