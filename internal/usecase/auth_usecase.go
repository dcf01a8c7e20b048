package usecase

import (
	"context"
	"errors"
	"time"

	"job-board/internal/domain/employee"
	"job-board/internal/domain/recruiter"
	"job-board/internal/pkg/jwt"
	ucauth "job-board/internal/usecase/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// TokenRevoker is the write side of the logout denylist.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type AuthUsecase interface {
	RegisterEmployee(ctx context.Context, in ucauth.EmployeeRegisterInput) (employee.Employee, error)
	LoginEmployee(ctx context.Context, in ucauth.LoginInput) (employee.Employee, string, error)
	RegisterRecruiter(ctx context.Context, in ucauth.RecruiterRegisterInput) (recruiter.Recruiter, error)
	LoginRecruiter(ctx context.Context, in ucauth.LoginInput) (recruiter.Recruiter, string, error)
	Logout(ctx context.Context, token string)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
	revoker TokenRevoker

	now func() time.Time
}

func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service, revoker TokenRevoker) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc, revoker: revoker, now: time.Now}
}

func (u *Auth) RegisterEmployee(ctx context.Context, in ucauth.EmployeeRegisterInput) (employee.Employee, error) {
	return u.authSvc.RegisterEmployee(ctx, in)
}

func (u *Auth) LoginEmployee(ctx context.Context, in ucauth.LoginInput) (employee.Employee, string, error) {
	e, err := u.authSvc.LoginEmployee(ctx, in)
	if err != nil {
		return employee.Employee{}, "", err
	}

	token, err := u.jwt.GenerateAccessToken(e.ID, jwt.RoleEmployee)
	if err != nil {
		return employee.Employee{}, "", ucauth.ErrInternal
	}
	return e, token, nil
}

func (u *Auth) RegisterRecruiter(ctx context.Context, in ucauth.RecruiterRegisterInput) (recruiter.Recruiter, error) {
	return u.authSvc.RegisterRecruiter(ctx, in)
}

func (u *Auth) LoginRecruiter(ctx context.Context, in ucauth.LoginInput) (recruiter.Recruiter, string, error) {
	r, err := u.authSvc.LoginRecruiter(ctx, in)
	if err != nil {
		return recruiter.Recruiter{}, "", err
	}

	token, err := u.jwt.GenerateAccessToken(r.ID, jwt.RoleRecruiter)
	if err != nil {
		return recruiter.Recruiter{}, "", ucauth.ErrInternal
	}
	return r, token, nil
}

// Logout denylists the token for its remaining validity. Logout succeeds
// regardless: an invalid or absent token leaves nothing to revoke, and the
// handler clears the cookie either way.
func (u *Auth) Logout(ctx context.Context, token string) {
	if token == "" || u.revoker == nil {
		return
	}

	claims, err := u.jwt.ValidateToken(token)
	if err != nil {
		return
	}

	ttl := claims.ExpiredAt.Sub(u.now().UTC())
	if ttl <= 0 {
		return
	}
	_ = u.revoker.Revoke(ctx, claims.ID, ttl)
}
