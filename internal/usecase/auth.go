package usecase

import (
	"context"

	"bakehouse/internal/domain/user"
	"bakehouse/internal/infra"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"
	"bakehouse/internal/pkg/jwt"
	"bakehouse/internal/pkg/password"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

type LoginResult struct {
	User  *user.User
	Token string
}

type AuthUsecase interface {
	Login(ctx context.Context, tenantID uuid.UUID, email, rawPassword string) (LoginResult, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
}

type authInteractor struct {
	users UserRepo
	jwt   *jwt.Service
	clk   clock.Clock
}

func NewAuthUsecase(users UserRepo, jwtSvc *jwt.Service, clk clock.Clock) AuthUsecase {
	return &authInteractor{users: users, jwt: jwtSvc, clk: clk}
}

func (u *authInteractor) Login(ctx context.Context, tenantID uuid.UUID, email, rawPassword string) (LoginResult, error) {
	account, err := u.users.FindByEmail(ctx, tenantID, email)
	if err != nil {
		// A missing account and a bad password look the same to the caller.
		if infra.IsKind(err, infra.KindNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := password.ComparePassword(account.PasswordHash(), rawPassword); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(account.ID(), account.TenantID(), account.Role())
	if err != nil {
		return LoginResult{}, err
	}

	if err := u.users.UpdateLastLogin(ctx, account.ID(), u.clk.Now()); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: account, Token: token}, nil
}

func (u *authInteractor) CurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return u.users.FindByID(ctx, userID)
}
