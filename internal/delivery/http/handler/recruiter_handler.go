package handler

import (
	"errors"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/job"
	"job-board/internal/domain/recruiter"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"
	ucauth "job-board/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecruiterHandler struct {
	auth usecase.AuthUsecase
	uc   usecase.RecruiterUsecase
}

type recruiterRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

type recruiterUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

type createJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func NewRecruiterHandler(auth usecase.AuthUsecase, uc usecase.RecruiterUsecase) *RecruiterHandler {
	return &RecruiterHandler{auth: auth, uc: uc}
}

func (h *RecruiterHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Index)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Delete("/logout", h.Logout)
}

func (h *RecruiterHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.Dashboard)
	r.Patch("/dashboard", h.ToggleDashboard)
	r.Get("/profile", h.Profile)
	r.Patch("/profile", h.UpdateProfile)
	r.Get("/jobListing", h.ListJobs)
	r.Post("/jobListing", h.CreateJob)
	r.Delete("/jobListing/:id", h.DeleteJob)
}

func (h *RecruiterHandler) Index(c fiber.Ctx) error {
	routes := map[string]any{
		"/dashboard":      map[string]string{"GET": "Get recruiter dashboard", "PATCH": "Toggle completion on one posted job"},
		"/profile":        map[string]string{"GET": "Get recruiter profile", "PATCH": "Update recruiter profile"},
		"/jobListing":     map[string]string{"GET": "Get all jobs posted", "POST": "Post a job"},
		"/jobListing/:id": map[string]string{"DELETE": "Delete a job"},
		"/register":       map[string]string{"POST": "Register a recruiter"},
		"/login":          map[string]string{"POST": "Login a recruiter"},
		"/logout":         map[string]string{"DELETE": "Logout"},
	}
	return response.Success(c, fiber.StatusOK, "Welcome to the recruiter routes", routes)
}

func (h *RecruiterHandler) Register(c fiber.Ctx) error {
	var req recruiterRegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	r, err := h.auth.RegisterRecruiter(c.Context(), ucauth.RecruiterRegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		if errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Recruiter with this email already exists", nil, err)
		}
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecruiterResponse(r))
}

func (h *RecruiterHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	r, token, err := h.auth.LoginRecruiter(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	setAccessTokenCookie(c, token)

	data := map[string]any{
		"token":     token,
		"recruiter": dto.NewRecruiterResponse(r),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *RecruiterHandler) Logout(c fiber.Ctx) error {
	h.auth.Logout(c.Context(), c.Cookies(middleware.AccessTokenCookie))
	clearAccessTokenCookie(c)
	return response.Success(c, fiber.StatusOK, "Logged out successfully", nil)
}

func (h *RecruiterHandler) Dashboard(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	r, err := h.uc.GetProfile(c.Context(), id)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Recruiter not found", nil, err)
		}
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecruiterResponse(r))
}

func (h *RecruiterHandler) ToggleDashboard(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	j, err := h.uc.ToggleDashboard(c.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found for this recruiter", nil, err)
		}
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *RecruiterHandler) Profile(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	r, err := h.uc.GetProfile(c.Context(), id)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Recruiter not found", nil, err)
		}
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecruiterResponse(r))
}

func (h *RecruiterHandler) UpdateProfile(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	var req recruiterUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	r, err := h.uc.UpdateProfile(c.Context(), id, usecase.UpdateRecruiterProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Bio:   req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, recruiter.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Recruiter not found", nil, err)
		case errors.Is(err, recruiter.ErrDuplicateEmail):
			return middleware.NewAppError(fiber.StatusBadRequest, "Recruiter with this email already exists", nil, err)
		default:
			return internalError(err)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecruiterResponse(r))
}

func (h *RecruiterHandler) ListJobs(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	jobs, err := h.uc.ListJobs(c.Context(), id)
	if err != nil {
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(jobs))
}

func (h *RecruiterHandler) CreateJob(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	j, err := h.uc.CreateJob(c.Context(), id, usecase.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Title and description are required", nil, err)
		}
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *RecruiterHandler) DeleteJob(c fiber.Ctx) error {
	id, ok := subjectID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.uc.DeleteJob(c.Context(), id, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, "Deleted", nil)
}
