// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/OscarGirao89/FusionArte-sub000/internals/configs"
	dto "github.com/OscarGirao89/FusionArte-sub000/internals/features/users/auth/dto"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/users/model"
	helper "github.com/OscarGirao89/FusionArte-sub000/internals/helpers"
	authmw "github.com/OscarGirao89/FusionArte-sub000/internals/middlewares/auth"
)

const accessTokenTTL = 24 * time.Hour

type Handler struct {
	DB *gorm.DB
}

/* =======================================================
   AUTH
======================================================= */

// POST /auth/register
func (h *Handler) Register(c *fiber.Ctx) error {
	var in dto.RegisterDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to hash password")
	}

	m := model.User{
		UserName:     strings.TrimSpace(in.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(in.UserEmail)),
		UserPassword: string(hash),
		UserRole:     model.UserRoleStudent,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "registered", dto.ToUserResponse(m))
}

// POST /auth/login
func (h *Handler) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.User
	err := h.DB.First(&m, "user_email = ?", strings.ToLower(strings.TrimSpace(in.UserEmail))).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(in.UserPassword)) != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
	}

	token, exp, err := issueAccessToken(m)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "login ok", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
		User:        dto.ToUserResponse(m),
	})
}

// POST /auth/logout
func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.JsonOK(c, "logged out", fiber.Map{})
}

// GET /me
func (h *Handler) Me(c *fiber.Ctx) error {
	uid, _ := c.Locals(authmw.LocUserID).(string)
	if uid == "" {
		return helper.JsonError(c, http.StatusUnauthorized, "Unauthorized")
	}
	var m model.User
	if err := h.DB.First(&m, "user_id = ?", uid).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(m))
}

func issueAccessToken(m model.User) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"id":   m.UserID.String(),
		"sub":  m.UserID.String(),
		"role": string(m.UserRole),
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(configs.JWTSecret))
	return signed, exp, err
}
