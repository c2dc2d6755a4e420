// Seeds demo data for local development: a handful of teachers, sessions
// in every lifecycle state, one plan per validity type and a pair of coupons.
package main

import (
	"log"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/OscarGirao89/FusionArte-sub000/internals/configs"
	database "github.com/OscarGirao89/FusionArte-sub000/internals/databases"
	couponModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/model"
	membershipModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/model"
	teacherModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/people/model"
	payrollService "github.com/OscarGirao89/FusionArte-sub000/internals/features/payroll/service"
	scheduleModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/schedule/model"
	userModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/users/model"
)

func main() {
	configs.LoadEnv()
	database.ConnectDB()
	database.AutoMigrate()

	db := database.DB

	// ---------- USERS ----------
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	studentHash, _ := bcrypt.GenerateFromPassword([]byte("student1234"), bcrypt.DefaultCost)
	admin := userModel.User{
		UserName:     "Admin",
		UserEmail:    "admin@fusionarte.local",
		UserPassword: string(adminHash),
		UserRole:     userModel.UserRoleAdmin,
	}
	student := userModel.User{
		UserName:     "Lucía Demo",
		UserEmail:    "lucia@fusionarte.local",
		UserPassword: string(studentHash),
		UserRole:     userModel.UserRoleStudent,
	}
	mustCreate(db.FirstOrCreate(&admin, userModel.User{UserEmail: admin.UserEmail}).Error, "admin user")
	mustCreate(db.FirstOrCreate(&student, userModel.User{UserEmail: student.UserEmail}).Error, "student user")

	// ---------- TEACHERS ----------
	perClass := mustScheme(payrollService.PerClassScheme{PayRate: 25, CancelledClassPay: 10})
	monthly := mustScheme(payrollService.MonthlyScheme{MonthlySalary: 1500})
	percentage := mustScheme(payrollService.PercentageScheme{PayRate: 60, CancelledClassPay: 10})

	partner := teacherModel.Teacher{
		TeacherName:           "Marta Ríos",
		TeacherEmail:          "marta@fusionarte.local",
		TeacherIsPartner:      true,
		TeacherPaymentDetails: datatypes.JSON(percentage),
	}
	hourly := teacherModel.Teacher{
		TeacherName:           "Diego Fuentes",
		TeacherEmail:          "diego@fusionarte.local",
		TeacherPaymentDetails: datatypes.JSON(perClass),
	}
	salaried := teacherModel.Teacher{
		TeacherName:           "Ana Belén",
		TeacherEmail:          "ana@fusionarte.local",
		TeacherPaymentDetails: datatypes.JSON(monthly),
	}
	mustCreate(db.FirstOrCreate(&partner, teacherModel.Teacher{TeacherEmail: partner.TeacherEmail}).Error, "partner teacher")
	mustCreate(db.FirstOrCreate(&hourly, teacherModel.Teacher{TeacherEmail: hourly.TeacherEmail}).Error, "hourly teacher")
	mustCreate(db.FirstOrCreate(&salaried, teacherModel.Teacher{TeacherEmail: salaried.TeacherEmail}).Error, "salaried teacher")

	// ---------- SESSIONS ----------
	fixedPay := scheduleModel.WorkshopPaymentTypeFixed
	fixedVal := 120.0
	sessions := []scheduleModel.ClassSession{
		{
			ClassSessionName:            "Salsa Beginners",
			ClassSessionType:            scheduleModel.ClassSessionTypeRecurring,
			ClassSessionTeacherIDs:      pq.StringArray{hourly.TeacherID.String()},
			ClassSessionDurationMinutes: 60,
			ClassSessionStatus:          scheduleModel.ClassSessionStatusCompleted,
			ClassSessionPrice:           12,
		},
		{
			ClassSessionName:            "Bachata Duo",
			ClassSessionType:            scheduleModel.ClassSessionTypeRecurring,
			ClassSessionTeacherIDs:      pq.StringArray{hourly.TeacherID.String(), partner.TeacherID.String()},
			ClassSessionDurationMinutes: 90,
			ClassSessionStatus:          scheduleModel.ClassSessionStatusCompleted,
			ClassSessionPrice:           15,
		},
		{
			ClassSessionName:            "Kizomba Intro",
			ClassSessionType:            scheduleModel.ClassSessionTypeRecurring,
			ClassSessionTeacherIDs:      pq.StringArray{salaried.TeacherID.String()},
			ClassSessionDurationMinutes: 60,
			ClassSessionStatus:          scheduleModel.ClassSessionStatusCancelledLowAttendance,
			ClassSessionPrice:           12,
		},
		{
			ClassSessionName:            "Contemporary Lab",
			ClassSessionType:            scheduleModel.ClassSessionTypeRecurring,
			ClassSessionTeacherIDs:      pq.StringArray{partner.TeacherID.String()},
			ClassSessionDurationMinutes: 75,
			ClassSessionStatus:          scheduleModel.ClassSessionStatusCancelledTeacher,
			ClassSessionPrice:           14,
		},
		{
			ClassSessionName:            "Summer Workshop",
			ClassSessionType:            scheduleModel.ClassSessionTypeWorkshop,
			ClassSessionTeacherIDs:      pq.StringArray{hourly.TeacherID.String()},
			ClassSessionDurationMinutes: 180,
			ClassSessionStatus:          scheduleModel.ClassSessionStatusScheduled,
			ClassSessionPrice:           35,

			ClassSessionWorkshopPaymentType:  &fixedPay,
			ClassSessionWorkshopPaymentValue: &fixedVal,
		},
	}
	for i := range sessions {
		mustCreate(db.FirstOrCreate(&sessions[i], scheduleModel.ClassSession{ClassSessionName: sessions[i].ClassSessionName}).Error, "session "+sessions[i].ClassSessionName)
	}

	// ---------- PLANS ----------
	monthStart := membershipModel.MonthlyStartNextMonth
	months := 1
	unit := membershipModel.DurationUnitDays
	dur := 30
	count := 10
	tierUnit := membershipModel.DurationUnitMonths
	tierDur := 3
	fixedFrom := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	fixedTo := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	tiers := datatypes.JSON([]byte(`[{"class_count":5,"price":55},{"class_count":10,"price":95},{"class_count":20,"price":170}]`))

	plans := []membershipModel.MembershipPlan{
		{
			MembershipPlanName:             "Unlimited Monthly",
			MembershipPlanAccessType:       membershipModel.PlanAccessUnlimited,
			MembershipPlanValidity:         membershipModel.PlanValidityMonthly,
			MembershipPlanMonthlyStartType: &monthStart,
			MembershipPlanValidityMonths:   &months,
			MembershipPlanPrice:            75,
		},
		{
			MembershipPlanName:          "10-Class Pack",
			MembershipPlanAccessType:    membershipModel.PlanAccessClassPack,
			MembershipPlanValidity:      membershipModel.PlanValidityRelative,
			MembershipPlanDurationUnit:  &unit,
			MembershipPlanDurationValue: &dur,
			MembershipPlanClassCount:    &count,
			MembershipPlanPrice:         90,
		},
		{
			MembershipPlanName:       "Autumn Course Pass",
			MembershipPlanAccessType: membershipModel.PlanAccessCoursePass,
			MembershipPlanValidity:   membershipModel.PlanValidityFixed,
			MembershipPlanStartDate:  &fixedFrom,
			MembershipPlanEndDate:    &fixedTo,
			MembershipPlanPrice:      210,
		},
		{
			MembershipPlanName:          "Custom Pack",
			MembershipPlanAccessType:    membershipModel.PlanAccessCustomPack,
			MembershipPlanValidity:      membershipModel.PlanValidityRelative,
			MembershipPlanDurationUnit:  &tierUnit,
			MembershipPlanDurationValue: &tierDur,
			MembershipPlanPriceTiers:    tiers,
		},
	}
	for i := range plans {
		mustCreate(db.FirstOrCreate(&plans[i], membershipModel.MembershipPlan{MembershipPlanName: plans[i].MembershipPlanName}).Error, "plan "+plans[i].MembershipPlanName)
	}

	// ---------- COUPONS ----------
	limit := 50
	expiry := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	coupons := []couponModel.Coupon{
		{
			CouponCode:           "WELCOME20",
			CouponDiscountType:   couponModel.CouponDiscountPercentage,
			CouponDiscountValue:  20,
			CouponApplicableTo:   couponModel.CouponApplicableAllMemberships,
			CouponStatus:         couponModel.CouponStatusActive,
			CouponExpirationDate: &expiry,
			CouponUsageLimit:     &limit,
		},
		{
			CouponCode:             "DROPIN5",
			CouponDiscountType:     couponModel.CouponDiscountFixed,
			CouponDiscountValue:    5,
			CouponApplicableTo:     couponModel.CouponApplicableSpecificClasses,
			CouponSpecificClassIDs: pq.StringArray{sessions[0].ClassSessionID.String()},
			CouponStatus:           couponModel.CouponStatusActive,
		},
	}
	for i := range coupons {
		mustCreate(db.FirstOrCreate(&coupons[i], couponModel.Coupon{CouponCode: coupons[i].CouponCode}).Error, "coupon "+coupons[i].CouponCode)
	}

	log.Println("✅ Seed complete.")
}

func mustScheme(s payrollService.PaymentScheme) []byte {
	raw, err := payrollService.EncodeScheme(s)
	if err != nil {
		log.Fatalf("❌ encode scheme: %v", err)
	}
	return raw
}

func mustCreate(err error, what string) {
	if err != nil {
		log.Fatalf("❌ seed %s: %v", what, err)
	}
}
