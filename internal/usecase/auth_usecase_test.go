package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"job-board/internal/pkg/jwt"
	ucauth "job-board/internal/usecase/auth"
)

type memRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newMemRevoker() *memRevoker {
	return &memRevoker{revoked: map[string]time.Duration{}}
}

func (m *memRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = ttl
	return nil
}

func newTestAuth(revoker TokenRevoker) (*Auth, *memEmployeeRepo, *memRecruiterRepo) {
	employees := newMemEmployeeRepo()
	recruiters := newMemRecruiterRepo()
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	return NewAuthUsecase(ucauth.NewService(employees, recruiters), jwtSvc, revoker), employees, recruiters
}

func TestAuth_RegisterEmployee_DuplicateEmail(t *testing.T) {
	uc, _, _ := newTestAuth(nil)
	ctx := context.Background()

	in := ucauth.EmployeeRegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	if _, err := uc.RegisterEmployee(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in.Name = "Alice Again"
	if _, err := uc.RegisterEmployee(ctx, in); !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_RegisterEmployee_StripsPasswordHash(t *testing.T) {
	uc, employees, _ := newTestAuth(nil)
	ctx := context.Background()

	e, err := uc.RegisterEmployee(ctx, ucauth.EmployeeRegisterInput{
		Name: "Alice", Email: "Alice@Example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if e.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if e.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", e.Email)
	}

	stored, err := employees.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("stored employee: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secret123" {
		t.Fatalf("password not hashed at rest")
	}
}

func TestAuth_LoginEmployee_IndistinguishableFailures(t *testing.T) {
	uc, _, _ := newTestAuth(nil)
	ctx := context.Background()

	if _, err := uc.RegisterEmployee(ctx, ucauth.EmployeeRegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, wrongPw := uc.LoginEmployee(ctx, ucauth.LoginInput{Email: "alice@example.com", Password: "wrong"})
	_, _, unknown := uc.LoginEmployee(ctx, ucauth.LoginInput{Email: "nobody@example.com", Password: "secret123"})

	if !errors.Is(wrongPw, ucauth.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if !errors.Is(unknown, ucauth.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPw.Error() != unknown.Error() {
		t.Fatalf("failure modes distinguishable: %q vs %q", wrongPw, unknown)
	}
}

func TestAuth_LoginEmployee_IssuesValidToken(t *testing.T) {
	uc, _, _ := newTestAuth(nil)
	ctx := context.Background()

	reg, err := uc.RegisterEmployee(ctx, ucauth.EmployeeRegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	e, token, err := uc.LoginEmployee(ctx, ucauth.LoginInput{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if e.ID != reg.ID {
		t.Fatalf("subject mismatch")
	}

	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	claims, err := jwtSvc.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.SubjectID != reg.ID || claims.Role != jwt.RoleEmployee {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuth_LoginRecruiter_RoleClaim(t *testing.T) {
	uc, _, _ := newTestAuth(nil)
	ctx := context.Background()

	if _, err := uc.RegisterRecruiter(ctx, ucauth.RecruiterRegisterInput{
		Name: "Bob", Email: "bob@corp.com", Password: "secret123", Bio: "hiring",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, token, err := uc.LoginRecruiter(ctx, ucauth.LoginInput{Email: "bob@corp.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := jwt.NewHMACService("test-secret", time.Hour).ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Role != jwt.RoleRecruiter {
		t.Fatalf("expected recruiter role, got %q", claims.Role)
	}
}

func TestAuth_Logout_RevokesToken(t *testing.T) {
	revoker := newMemRevoker()
	uc, _, _ := newTestAuth(revoker)
	ctx := context.Background()

	if _, err := uc.RegisterEmployee(ctx, ucauth.EmployeeRegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, token, err := uc.LoginEmployee(ctx, ucauth.LoginInput{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	uc.Logout(ctx, token)

	if len(revoker.revoked) != 1 {
		t.Fatalf("expected 1 revoked token id, got %d", len(revoker.revoked))
	}
	for _, ttl := range revoker.revoked {
		if ttl <= 0 || ttl > time.Hour {
			t.Fatalf("unexpected denylist ttl: %s", ttl)
		}
	}
}

func TestAuth_Logout_IgnoresGarbageToken(t *testing.T) {
	revoker := newMemRevoker()
	uc, _, _ := newTestAuth(revoker)

	uc.Logout(context.Background(), "not-a-token")

	if len(revoker.revoked) != 0 {
		t.Fatalf("garbage token should not be revoked")
	}
}
