package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "github.com/OscarGirao89/FusionArte-sub000/internals/features/users/auth/controller"
)

// AuthPublicRoutes: register / login / logout.
func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := &authController.Handler{DB: db}

	grp := public.Group("/auth")
	{
		grp.Post("/register", h.Register)
		grp.Post("/login", h.Login)
		grp.Post("/logout", h.Logout)
	}
}

// AuthUserRoutes: endpoints behind the JWT guard.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &authController.Handler{DB: db}
	user.Get("/me", h.Me)
}
