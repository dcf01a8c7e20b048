package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"job-board/internal/domain/employee"
	"job-board/internal/domain/recruiter"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type EmployeeRegisterInput struct {
	Name      string
	Email     string
	Password  string
	Contact   string
	Skills    []string
	Education string
}

type RecruiterRegisterInput struct {
	Name     string
	Email    string
	Password string
	Bio      string
}

type LoginInput struct {
	Email    string
	Password string
}

// Service owns credential handling for both account collections. Email
// uniqueness is check-then-create with the unique index as the backstop
// for the race between the check and the insert.
type Service struct {
	employees  employee.Repository
	recruiters recruiter.Repository
}

func NewService(employees employee.Repository, recruiters recruiter.Repository) *Service {
	return &Service{employees: employees, recruiters: recruiters}
}

func (s *Service) RegisterEmployee(ctx context.Context, in EmployeeRegisterInput) (employee.Employee, error) {
	email := normalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Name) == "" || in.Password == "" {
		return employee.Employee{}, ErrInvalidInput
	}

	exists, err := s.employees.ExistsByEmail(ctx, email)
	if err != nil {
		return employee.Employee{}, ErrInternal
	}
	if exists {
		return employee.Employee{}, ErrEmailAlreadyRegistered
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return employee.Employee{}, ErrInternal
	}

	e := employee.Employee{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Contact:      strings.TrimSpace(in.Contact),
		Skills:       in.Skills,
		Education:    strings.TrimSpace(in.Education),
	}

	if err := s.employees.Create(ctx, e); err != nil {
		if errors.Is(err, employee.ErrDuplicateEmail) {
			return employee.Employee{}, ErrEmailAlreadyRegistered
		}
		return employee.Employee{}, ErrInternal
	}

	created, err := s.employees.GetByID(ctx, e.ID)
	if err != nil {
		return employee.Employee{}, ErrInternal
	}
	created.PasswordHash = ""
	return created, nil
}

func (s *Service) RegisterRecruiter(ctx context.Context, in RecruiterRegisterInput) (recruiter.Recruiter, error) {
	email := normalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Name) == "" || in.Password == "" {
		return recruiter.Recruiter{}, ErrInvalidInput
	}

	exists, err := s.recruiters.ExistsByEmail(ctx, email)
	if err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}
	if exists {
		return recruiter.Recruiter{}, ErrEmailAlreadyRegistered
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}

	r := recruiter.Recruiter{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Bio:          strings.TrimSpace(in.Bio),
	}

	if err := s.recruiters.Create(ctx, r); err != nil {
		if errors.Is(err, recruiter.ErrDuplicateEmail) {
			return recruiter.Recruiter{}, ErrEmailAlreadyRegistered
		}
		return recruiter.Recruiter{}, ErrInternal
	}

	created, err := s.recruiters.GetByID(ctx, r.ID)
	if err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}
	created.PasswordHash = ""
	return created, nil
}

// LoginEmployee deliberately reports the same ErrInvalidCredentials for an
// unknown email and a wrong password.
func (s *Service) LoginEmployee(ctx context.Context, in LoginInput) (employee.Employee, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return employee.Employee{}, ErrInvalidCredentials
	}

	e, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return employee.Employee{}, ErrInvalidCredentials
		}
		return employee.Employee{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(in.Password)) != nil {
		return employee.Employee{}, ErrInvalidCredentials
	}

	e.PasswordHash = ""
	return e, nil
}

func (s *Service) LoginRecruiter(ctx context.Context, in LoginInput) (recruiter.Recruiter, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return recruiter.Recruiter{}, ErrInvalidCredentials
	}

	r, err := s.recruiters.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return recruiter.Recruiter{}, ErrInvalidCredentials
		}
		return recruiter.Recruiter{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(r.PasswordHash), []byte(in.Password)) != nil {
		return recruiter.Recruiter{}, ErrInvalidCredentials
	}

	r.PasswordHash = ""
	return r, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
