package handler

import (
	"errors"
	"time"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/employee"
	"job-board/internal/domain/job"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"
	ucauth "job-board/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	auth usecase.AuthUsecase
	uc   usecase.EmployeeUsecase
}

type employeeRegisterRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Contact   string   `json:"contact"`
	Skills    []string `json:"skills"`
	Education string   `json:"education"`
}

type employeeUpdateRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Contact   string   `json:"contact"`
	Skills    []string `json:"skills"`
	Education string   `json:"education"`
	Rating    *float64 `json:"rating"`
}

func NewEmployeeHandler(auth usecase.AuthUsecase, uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{auth: auth, uc: uc}
}

func (h *EmployeeHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Index)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Delete("/logout", h.Logout)
}

func (h *EmployeeHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.Dashboard)
	r.Patch("/dashboard", h.ToggleDashboard)
	r.Get("/profile", h.Profile)
	r.Patch("/profile", h.UpdateProfile)
	r.Get("/applications", h.Applications)
	r.Post("/apply/:jobId", h.Apply)
}

func (h *EmployeeHandler) Index(c fiber.Ctx) error {
	routes := map[string]any{
		"/dashboard":    map[string]string{"GET": "Get employee dashboard", "PATCH": "Toggle completion on all applied jobs"},
		"/profile":      map[string]string{"GET": "Get employee profile", "PATCH": "Update employee profile"},
		"/applications": map[string]string{"GET": "Get all applied jobs"},
		"/apply/:jobId": map[string]string{"POST": "Apply for a job"},
		"/register":     map[string]string{"POST": "Register an employee"},
		"/login":        map[string]string{"POST": "Login an employee"},
		"/logout":       map[string]string{"DELETE": "Logout"},
	}
	return response.Success(c, fiber.StatusOK, "Welcome to the employee routes", routes)
}

func (h *EmployeeHandler) Register(c fiber.Ctx) error {
	var req employeeRegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	e, err := h.auth.RegisterEmployee(c.Context(), ucauth.EmployeeRegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Contact:   req.Contact,
		Skills:    req.Skills,
		Education: req.Education,
	})
	if err != nil {
		if errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Employee with this email already exists", nil, err)
		}
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmployeeResponse(e))
}

func (h *EmployeeHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	e, token, err := h.auth.LoginEmployee(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	setAccessTokenCookie(c, token)

	data := map[string]any{
		"token":    token,
		"employee": dto.NewEmployeeResponse(e),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *EmployeeHandler) Logout(c fiber.Ctx) error {
	h.auth.Logout(c.Context(), c.Cookies(middleware.AccessTokenCookie))
	clearAccessTokenCookie(c)
	return response.Success(c, fiber.StatusOK, "Logged out successfully", nil)
}

func (h *EmployeeHandler) Dashboard(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	jobs, err := h.uc.Dashboard(c.Context(), id)
	if err != nil {
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(jobs))
}

func (h *EmployeeHandler) ToggleDashboard(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	if _, err := h.uc.ToggleDashboard(c.Context(), id); err != nil {
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, "Updated", nil)
}

func (h *EmployeeHandler) Profile(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	e, err := h.uc.GetProfile(c.Context(), id)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
		}
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmployeeResponse(e))
}

func (h *EmployeeHandler) UpdateProfile(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	var req employeeUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	e, err := h.uc.UpdateProfile(c.Context(), id, usecase.UpdateEmployeeProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Contact:   req.Contact,
		Skills:    req.Skills,
		Education: req.Education,
		Rating:    req.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
		case errors.Is(err, employee.ErrDuplicateEmail):
			return middleware.NewAppError(fiber.StatusBadRequest, "Employee with this email already exists", nil, err)
		default:
			return internalError(err)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmployeeResponse(e))
}

func (h *EmployeeHandler) Applications(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	titles, err := h.uc.AppliedJobTitles(c.Context(), id)
	if err != nil {
		return internalError(err)
	}
	if len(titles) == 0 {
		return response.Success(c, fiber.StatusOK, "You have not applied for any job yet", []string{})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, titles)
}

func (h *EmployeeHandler) Apply(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	msg, err := h.uc.Apply(c.Context(), id, jobID)
	if err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		case errors.Is(err, employee.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
		case errors.Is(err, job.ErrDuplicateApplication):
			return middleware.NewAppError(fiber.StatusBadRequest, "Employee has already applied for this job", nil, err)
		default:
			return internalError(err)
		}
	}
	return response.Success(c, fiber.StatusOK, msg, nil)
}

func subjectID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxSubjectIDKey).(uuid.UUID)
	return id, ok
}

func setAccessTokenCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		HTTPOnly: true,
		Expires:  time.Now().Add(time.Hour),
	})
}

func clearAccessTokenCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
}

func internalError(err error) error {
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
