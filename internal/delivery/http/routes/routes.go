package routes

import (
	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/infrastructure/persistence/postgres"
	"job-board/internal/pkg/jwt"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"
	ucauth "job-board/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

// Denylist is the logout denylist as seen by both the middleware (reads)
// and the auth usecase (writes).
type Denylist interface {
	middleware.TokenRevoker
	usecase.TokenRevoker
}

type Registry struct {
	health    *handler.HealthHandler
	employee  *handler.EmployeeHandler
	recruiter *handler.RecruiterHandler
	authMw    *middleware.AuthMiddleware
}

func NewRegistry(cfg config.Config, db database.DB, denylist Denylist) *Registry {
	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	employeeRepo := postgres.NewEmployeeRepository(db)
	recruiterRepo := postgres.NewRecruiterRepository(db)
	jobRepo := postgres.NewJobRepository(db)

	authUC := usecase.NewAuthUsecase(ucauth.NewService(employeeRepo, recruiterRepo), jwtSvc, denylist)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo, jobRepo)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo, jobRepo)

	return &Registry{
		health:    handler.NewHealthHandler(),
		employee:  handler.NewEmployeeHandler(authUC, employeeUC),
		recruiter: handler.NewRecruiterHandler(authUC, recruiterUC),
		authMw:    middleware.NewAuthMiddleware(jwtSvc, denylist),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	api.Get("/", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "Welcome to the job board API", map[string]string{
			"/api/employee":  "Employee routes",
			"/api/recruiter": "Recruiter routes",
		})
	})

	emp := api.Group("/employee")
	r.employee.RegisterPublicRoutes(emp)
	r.employee.RegisterProtectedRoutes(emp.Group("", r.authMw.RequireRole(jwt.RoleEmployee)))

	rec := api.Group("/recruiter")
	r.recruiter.RegisterPublicRoutes(rec)
	r.recruiter.RegisterProtectedRoutes(rec.Group("", r.authMw.RequireRole(jwt.RoleRecruiter)))
}
