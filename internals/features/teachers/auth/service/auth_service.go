package service

import (
	"context"
	"log"

	"schooladmin_backend/internals/features/school/model"
	"schooladmin_backend/internals/features/school/repository"
	authHelper "schooladmin_backend/internals/features/teachers/auth/helper"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

/* ==========================
   Types
========================== */

type AuthService struct {
	Repo   *repository.EntityRepository
	Tokens *helperAuth.TokenService
}

func NewAuthService(repo *repository.EntityRepository, tokens *helperAuth.TokenService) *AuthService {
	return &AuthService{Repo: repo, Tokens: tokens}
}

// LoginResult is what a successful login hands back to the controller.
type LoginResult struct {
	Teacher *model.TeacherModel
	Token   string
}

/* ==========================
   Register
========================== */

// Register expects input that already passed ValidateRegister.
func (s *AuthService) Register(ctx context.Context, in authHelper.RegisterInput) (*model.TeacherModel, error) {
	t, err := s.Repo.RegisterTeacher(ctx, repository.NewTeacher{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Address:  in.Address,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] teacher registered id=%s", t.TeacherID)
	return t, nil
}

/* ==========================
   Login
========================== */

func (s *AuthService) Login(ctx context.Context, in authHelper.LoginInput) (*LoginResult, error) {
	t, err := s.Repo.AuthenticateTeacher(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	token, _, err := s.Tokens.Issue(t.TeacherID)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] teacher login id=%s", t.TeacherID)
	return &LoginResult{Teacher: t, Token: token}, nil
}
