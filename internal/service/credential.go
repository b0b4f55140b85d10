package service

import (
	"context"
	"fmt"

	"munch-pos/internal/apperr"
	"munch-pos/internal/core/auth"
	"munch-pos/internal/domain"
	"munch-pos/internal/repo"
	"munch-pos/pkg/utils"
)

// CredentialService 注册/登录；口令散列与发 token 的策略都收在这里
type CredentialService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewCredentialService(users domain.UserRepository, jwter *auth.JWTer) *CredentialService {
	return &CredentialService{users: users, jwter: jwter}
}

func (s *CredentialService) Register(ctx context.Context, email, password string) error {
	if strong, msg := utils.PasswordStrength(password); !strong {
		return apperr.Validation(apperr.CodeWeakPassword, msg)
	}
	if !utils.IsValidEmail(email) {
		return apperr.Validation(apperr.CodeInvalidEmail, "Email address is not valid")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return apperr.Internal("find user by email", err)
	}
	if existing != nil {
		return apperr.Conflict(apperr.CodeUserExists,
			fmt.Sprintf("User email address '%s' already registered", email))
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return apperr.Internal("hash password", err)
	}
	u := &domain.User{EmailAddress: email, Password: hash}
	if err := s.users.Create(ctx, u); err != nil {
		// 查重与写入之间的并发窗口由唯一索引兜底
		if repo.IsDupKey(err) {
			return apperr.Conflict(apperr.CodeUserExists,
				fmt.Sprintf("User email address '%s' already registered", email))
		}
		return apperr.Internal("create user", err)
	}
	return nil
}

func (s *CredentialService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperr.Internal("find user by email", err)
	}
	if u == nil {
		return "", apperr.NotFound(apperr.CodeUserNotFound,
			fmt.Sprintf("User with email '%s' does not exist", email))
	}
	if !utils.CheckPassword(password, u.Password) {
		return "", apperr.Auth(apperr.CodeInvalidPassword, "Password is not correct")
	}

	token, err := s.jwter.Issue(u.EmailAddress)
	if err != nil {
		return "", apperr.Internal("issue token", err)
	}
	// 只留最新 token，不维护会话列表
	if err := s.users.UpdateToken(ctx, email, token); err != nil {
		return "", apperr.Internal("persist token", err)
	}
	return token, nil
}
