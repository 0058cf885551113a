package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/features/school/repository"
	authHelper "schooladmin_backend/internals/features/teachers/auth/helper"
	"schooladmin_backend/internals/features/teachers/auth/service"
	helper "schooladmin_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

/* =========================================================
   REGISTER
   ========================================================= */
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authHelper.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewAPIError(fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
	}

	res := authHelper.ValidateRegister(req)
	if !res.OK() {
		return validationError(res.Errors)
	}

	teacher, err := ac.Service.Register(c.UserContext(), res.Value)
	if err != nil {
		return mapAuthError(err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    teacher,
		"message": "Teacher registered successfully",
	})
}

/* =========================================================
   LOGIN
   ========================================================= */
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authHelper.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NewAPIError(fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
	}

	res := authHelper.ValidateLogin(req)
	if !res.OK() {
		return validationError(res.Errors)
	}

	out, err := ac.Service.Login(c.UserContext(), res.Value)
	if err != nil {
		return mapAuthError(err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    out.Teacher,
		"token":   out.Token,
		"message": "Login successful",
	})
}

/* =========================================================
   helpers
   ========================================================= */

func validationError(errs []authHelper.FieldError) error {
	return &helper.APIError{
		Status:  fiber.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: "validation failed",
		Errors:  errs,
	}
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return helper.NewAPIError(fiber.StatusBadRequest, "DUPLICATE_EMAIL", "email is already registered")
	case errors.Is(err, repository.ErrInvalidCredentials):
		return helper.NewAPIError(fiber.StatusBadRequest, "INVALID_CREDENTIALS", "invalid email or password")
	case errors.Is(err, repository.ErrTeacherInactive):
		return helper.NewAPIError(fiber.StatusForbidden, "ACCOUNT_INACTIVE", "account is inactive")
	default:
		return err
	}
}
