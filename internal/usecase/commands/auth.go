package commands

import (
	"context"

	"hotelres/internal/domain/user"
	"hotelres/internal/pkg/errs"
	"hotelres/internal/pkg/jwt"
	"hotelres/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type UserReadStore interface {
	FindByLoginID(ctx context.Context, loginID string) (*user.User, error)
}

type LoginResult struct {
	UserID      int64
	Email       string
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, loginID, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, loginID, rawPassword string) (*LoginResult, error) {
	found, err := a.readStore.FindByLoginID(ctx, loginID)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(found.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(found.ID(), found.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      found.ID(),
		Email:       found.Email(),
		Role:        found.Role(),
		AccessToken: token,
	}, nil
}
