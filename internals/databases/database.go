package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	couponModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/model"
	membershipModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/model"
	paymentModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/payments/model"
	teacherModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/people/model"
	scheduleModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/schedule/model"
	userModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full DSN + statement_timeout; keep PreferSimpleProtocol for PgBouncer
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=fusionarte&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate runs schema migration for every feature model.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&userModel.User{},
		&teacherModel.Teacher{},
		&scheduleModel.ClassSession{},
		&membershipModel.MembershipPlan{},
		&membershipModel.StudentMembership{},
		&paymentModel.StudentPayment{},
		&couponModel.Coupon{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ AutoMigrate done.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
