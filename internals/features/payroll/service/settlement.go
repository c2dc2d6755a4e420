// file: internals/features/payroll/service/settlement.go
package service

import (
	"github.com/google/uuid"
)

/* =======================================================
   INPUT SHAPES
   Pure calculator: callers map GORM models into these and
   decide themselves when to recompute.
======================================================= */

type ClassType string

const (
	ClassTypeRecurring ClassType = "recurring"
	ClassTypeWorkshop  ClassType = "workshop"
	ClassTypeRental    ClassType = "rental"
)

type ClassStatus string

const (
	ClassStatusScheduled              ClassStatus = "scheduled"
	ClassStatusCompleted              ClassStatus = "completed"
	ClassStatusCancelledLowAttendance ClassStatus = "cancelled-low-attendance"
	ClassStatusCancelledTeacher       ClassStatus = "cancelled-teacher"
)

type WorkshopPaymentType string

const (
	WorkshopPaymentFixed      WorkshopPaymentType = "fixed"
	WorkshopPaymentPercentage WorkshopPaymentType = "percentage"
)

type Class struct {
	ID                   uuid.UUID
	Name                 string
	Type                 ClassType
	TeacherIDs           []uuid.UUID
	DurationMinutes      int
	Status               ClassStatus
	WorkshopPaymentType  WorkshopPaymentType // workshops only
	WorkshopPaymentValue float64             // currency (fixed) or percent (percentage)
}

type Person struct {
	ID        uuid.UUID
	Name      string
	IsPartner bool
	Scheme    PaymentScheme // nil when not configured
}

/* =======================================================
   OUTPUT SHAPES
======================================================= */

// LineItem is the per-class breakdown of a settlement.
type LineItem struct {
	ClassID     uuid.UUID   `json:"class_id"`
	ClassName   string      `json:"class_name"`
	Status      ClassStatus `json:"status"`
	Shared      bool        `json:"shared"`
	NumTeachers int         `json:"num_teachers"`
	Amount      float64     `json:"amount"`
	// RateOnly lines carry a percentage with no computable amount
	// (percentage-paid workshops, percentage scheme on regular classes).
	// They are never summed into totals.
	RateOnly    bool    `json:"rate_only"`
	RatePercent float64 `json:"rate_percent,omitempty"`
}

// Settlement is what a person is owed for the given classes.
type Settlement struct {
	PersonID        uuid.UUID  `json:"person_id"`
	PersonName      string     `json:"person_name"`
	Lines           []LineItem `json:"lines"`
	Total           float64    `json:"total"`
	MonthlyOverride bool       `json:"monthly_override"` // total is the monthly salary, lines not computed
	NoScheme        bool       `json:"no_scheme"`        // zero pay because no scheme is configured
}

// PartnerSettlement splits income into individual vs shared buckets.
type PartnerSettlement struct {
	Settlement
	IndividualIncome float64 `json:"individual_income"`
	SharedIncome     float64 `json:"shared_income"`
}

/* =======================================================
   STUDIO EXPENSES — non-partner teachers
======================================================= */

// SettleStudioExpenses computes what the studio owes a non-partner
// teacher for the given classes. A monthly scheme overrides the
// per-class sum with the salary; no scheme means a zero total flagged
// as NoScheme rather than an error.
func SettleStudioExpenses(person Person, classes []Class) Settlement {
	out := Settlement{PersonID: person.ID, PersonName: person.Name, Lines: []LineItem{}}

	if person.Scheme == nil {
		out.NoScheme = true
		return out
	}
	if m, ok := person.Scheme.(MonthlyScheme); ok {
		out.MonthlyOverride = true
		out.Total = m.MonthlySalary
		return out
	}

	for _, cl := range classes {
		line := settleLine(person.Scheme, cl, 1)
		out.Lines = append(out.Lines, line)
		if !line.RateOnly {
			out.Total += line.Amount
		}
	}
	return out
}

/* =======================================================
   PARTNER INCOME — shared-class splitting
======================================================= */

// SettlePartnerIncome computes a partner's income, splitting classes
// into individual (one teacher) and shared (co-taught) buckets. Shared
// classes divide pay among co-teachers. Workshops ignore the partner's
// own scheme and use the session's payment policy instead.
func SettlePartnerIncome(partner Person, classes []Class) PartnerSettlement {
	out := PartnerSettlement{
		Settlement: Settlement{PersonID: partner.ID, PersonName: partner.Name, Lines: []LineItem{}},
	}

	// Monthly scheme takes precedence: the bucket split is not meaningful.
	if m, ok := partner.Scheme.(MonthlyScheme); ok {
		out.MonthlyOverride = true
		out.Total = m.MonthlySalary
		return out
	}
	if partner.Scheme == nil {
		out.NoScheme = true
	}

	for _, cl := range classes {
		n := len(cl.TeacherIDs)
		if n < 1 {
			n = 1 // never divide by zero on an unassigned session
		}
		shared := n > 1

		var line LineItem
		if cl.Type == ClassTypeWorkshop {
			line = settleWorkshopLine(cl, n)
		} else {
			if partner.Scheme == nil {
				line = LineItem{ClassID: cl.ID, ClassName: cl.Name, Status: cl.Status, NumTeachers: n}
			} else {
				line = settleLine(partner.Scheme, cl, n)
			}
		}
		line.Shared = shared
		out.Lines = append(out.Lines, line)

		if line.RateOnly {
			continue
		}
		if shared {
			out.SharedIncome += line.Amount
		} else {
			out.IndividualIncome += line.Amount
		}
	}

	out.Total = out.IndividualIncome + out.SharedIncome
	return out
}

/* =======================================================
   PER-CLASS RULES
======================================================= */

// settleLine applies the person's own scheme to one class, divided by
// numTeachers. Scheduled and cancelled-teacher classes never pay.
func settleLine(scheme PaymentScheme, cl Class, numTeachers int) LineItem {
	line := LineItem{ClassID: cl.ID, ClassName: cl.Name, Status: cl.Status, NumTeachers: numTeachers}

	switch s := scheme.(type) {
	case PerClassScheme:
		switch cl.Status {
		case ClassStatusCompleted:
			line.Amount = float64(cl.DurationMinutes) / 60.0 * s.PayRate / float64(numTeachers)
		case ClassStatusCancelledLowAttendance:
			line.Amount = s.CancelledClassPay / float64(numTeachers)
		}
	case PercentageScheme:
		switch cl.Status {
		case ClassStatusCompleted:
			// No revenue base is known here; report the rate only.
			line.RateOnly = true
			line.RatePercent = s.PayRate
		case ClassStatusCancelledLowAttendance:
			line.Amount = s.CancelledClassPay / float64(numTeachers)
		}
	case MonthlyScheme:
		// handled by the callers as a total override
	}
	return line
}

// settleWorkshopLine applies the workshop's own payment policy.
func settleWorkshopLine(cl Class, numTeachers int) LineItem {
	line := LineItem{ClassID: cl.ID, ClassName: cl.Name, Status: cl.Status, NumTeachers: numTeachers}

	switch cl.WorkshopPaymentType {
	case WorkshopPaymentFixed:
		line.Amount = cl.WorkshopPaymentValue / float64(numTeachers)
	case WorkshopPaymentPercentage:
		// Percentage-paid workshops never produce a numeric amount:
		// totals exclude them and only the rate is reported.
		line.RateOnly = true
		line.RatePercent = cl.WorkshopPaymentValue
	}
	return line
}
