// file: internals/features/payroll/service/scheme.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

/* =======================================================
   PAYMENT SCHEME — closed tagged variant
   Stored as JSONB on teachers (teacher_payment_details),
   decoded here so every branch switches on a sealed type.
======================================================= */

type SchemeKind string

const (
	SchemeKindPerClass   SchemeKind = "per_class"
	SchemeKindMonthly    SchemeKind = "monthly"
	SchemeKindPercentage SchemeKind = "percentage"
)

var ErrUnknownScheme = errors.New("unknown payment scheme type")

// PaymentScheme is a sealed sum type: exactly one of the variants below.
// A nil PaymentScheme means the person has no scheme configured (zero pay).
type PaymentScheme interface {
	Kind() SchemeKind
	sealedScheme()
}

// PerClassScheme pays per taught hour, with a flat amount for classes
// cancelled due to low attendance.
type PerClassScheme struct {
	PayRate           float64 `json:"pay_rate"`            // currency per hour
	CancelledClassPay float64 `json:"cancelled_class_pay"` // flat, per cancelled class
}

func (PerClassScheme) Kind() SchemeKind { return SchemeKindPerClass }
func (PerClassScheme) sealedScheme()    {}

// MonthlyScheme pays a fixed salary regardless of classes taught.
type MonthlyScheme struct {
	MonthlySalary float64 `json:"monthly_salary"`
}

func (MonthlyScheme) Kind() SchemeKind { return SchemeKindMonthly }
func (MonthlyScheme) sealedScheme()    {}

// PercentageScheme pays a percentage of revenue. The revenue base is not
// known to this engine, so regular classes under this scheme only report
// the rate (no numeric amount); the cancelled-class flat pay is absolute
// and is computed normally.
type PercentageScheme struct {
	PayRate           float64 `json:"pay_rate"` // percent
	CancelledClassPay float64 `json:"cancelled_class_pay"`
}

func (PercentageScheme) Kind() SchemeKind { return SchemeKindPercentage }
func (PercentageScheme) sealedScheme()    {}

/* =======================================================
   JSON CODEC
======================================================= */

type schemeEnvelope struct {
	Type              string   `json:"type"`
	PayRate           *float64 `json:"pay_rate,omitempty"`
	CancelledClassPay *float64 `json:"cancelled_class_pay,omitempty"`
	MonthlySalary     *float64 `json:"monthly_salary,omitempty"`
}

// DecodeScheme parses the teacher_payment_details blob. Empty/null input
// returns (nil, nil): no scheme configured, which is not an error — payroll
// must stay computable for display (flagged via Settlement.NoScheme).
func DecodeScheme(raw []byte) (PaymentScheme, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || trimmed == "{}" {
		return nil, nil
	}
	var env schemeEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode payment scheme: %w", err)
	}
	switch SchemeKind(env.Type) {
	case SchemeKindPerClass:
		return PerClassScheme{
			PayRate:           deref(env.PayRate),
			CancelledClassPay: deref(env.CancelledClassPay),
		}, nil
	case SchemeKindMonthly:
		return MonthlyScheme{MonthlySalary: deref(env.MonthlySalary)}, nil
	case SchemeKindPercentage:
		return PercentageScheme{
			PayRate:           deref(env.PayRate),
			CancelledClassPay: deref(env.CancelledClassPay),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, env.Type)
	}
}

// EncodeScheme serializes a scheme back to its JSONB form.
func EncodeScheme(s PaymentScheme) ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	env := schemeEnvelope{Type: string(s.Kind())}
	switch v := s.(type) {
	case PerClassScheme:
		env.PayRate, env.CancelledClassPay = ptr(v.PayRate), ptr(v.CancelledClassPay)
	case MonthlyScheme:
		env.MonthlySalary = ptr(v.MonthlySalary)
	case PercentageScheme:
		env.PayRate, env.CancelledClassPay = ptr(v.PayRate), ptr(v.CancelledClassPay)
	}
	return json.Marshal(env)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func ptr(f float64) *float64 { return &f }
