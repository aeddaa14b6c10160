// Package services contains the application services behind the REST
// handlers: account management and task CRUD.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/server/auth"
	"github.com/dmitrijs2005/todolist/internal/server/models"
	"github.com/dmitrijs2005/todolist/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// AuthOutcome is what a successful register or login yields: the new bearer
// token and the account it belongs to.
type AuthOutcome struct {
	UserID int64
	Token  string
}

type UserService struct {
	repo          users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewUserService(repo users.Repository, jwtSecret []byte, tokenValidity time.Duration) *UserService {
	return &UserService{repo: repo, jwtSecret: jwtSecret, tokenValidity: tokenValidity}
}

// Register creates an account and immediately issues a token, so signup
// doubles as login. Empty fields are a validation error; a taken username
// surfaces as common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthOutcome, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{UserName: username, Email: email, PasswordHash: hash}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return s.issueToken(user.ID)
}

// Login verifies the credentials and issues a token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*AuthOutcome, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.issueToken(user.ID)
}

func (s *UserService) issueToken(userID int64) (*AuthOutcome, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthOutcome{UserID: userID, Token: token}, nil
}
