// file: internals/features/payroll/dto/payroll_dto.go
package dto

import (
	"github.com/google/uuid"

	teacherModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/people/model"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/payroll/service"
	scheduleModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/schedule/model"
)

/* =======================================================
   MODEL → ENGINE INPUT MAPPERS
======================================================= */

// ToPerson decodes the teacher's payment blob into the scheme variant.
func ToPerson(m teacherModel.Teacher) (service.Person, error) {
	scheme, err := service.DecodeScheme(m.TeacherPaymentDetails)
	if err != nil {
		return service.Person{}, err
	}
	return service.Person{
		ID:        m.TeacherID,
		Name:      m.TeacherName,
		IsPartner: m.TeacherIsPartner,
		Scheme:    scheme,
	}, nil
}

func ToClass(m scheduleModel.ClassSession) service.Class {
	cl := service.Class{
		ID:              m.ClassSessionID,
		Name:            m.ClassSessionName,
		Type:            service.ClassType(m.ClassSessionType),
		TeacherIDs:      parseTeacherIDs(m.ClassSessionTeacherIDs),
		DurationMinutes: m.ClassSessionDurationMinutes,
		Status:          service.ClassStatus(m.ClassSessionStatus),
	}
	if m.ClassSessionWorkshopPaymentType != nil {
		cl.WorkshopPaymentType = service.WorkshopPaymentType(*m.ClassSessionWorkshopPaymentType)
	}
	if m.ClassSessionWorkshopPaymentValue != nil {
		cl.WorkshopPaymentValue = *m.ClassSessionWorkshopPaymentValue
	}
	return cl
}

func ToClasses(ms []scheduleModel.ClassSession) []service.Class {
	out := make([]service.Class, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToClass(m))
	}
	return out
}

func parseTeacherIDs(raw []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}

/* =======================================================
   RESPONSES
======================================================= */

// StudioExpensesResponse aggregates every non-partner teacher's
// settlement plus the studio-wide total expense.
type StudioExpensesResponse struct {
	Settlements  []service.Settlement `json:"settlements"`
	TotalExpense float64              `json:"total_expense"`
}
