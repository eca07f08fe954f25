package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/jobboard-api/internal/application/analytics"
	"github.com/jhoicas/jobboard-api/internal/application/auth"
	"github.com/jhoicas/jobboard-api/internal/application/recruitment"
	"github.com/jhoicas/jobboard-api/internal/application/reporting"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	VacancyUC     *usecase.VacancyUseCase
	CompanyUC     *usecase.CompanyUseCase
	ResumeUC      *usecase.ResumeUseCase
	ApplicationUC *recruitment.ApplicationUseCase
	SavedJobsUC   *recruitment.SavedJobsUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *reporting.ReportUseCase
	Store         Pinger
	Tokens        TokenVerifier
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authn := AuthMiddleware(deps.Tokens)
	employerOrAdmin := RequireRole(entity.RoleEmployer, entity.RoleAdmin)
	seekerOrAdmin := RequireRole(entity.RoleJobSeeker, entity.RoleAdmin)
	seeker := RequireRole(entity.RoleJobSeeker)
	admin := RequireRole(entity.RoleAdmin)
	hasCompany := RequireCompany(deps.CompanyUC)

	healthHandler := NewHealthHandler(deps.Store)
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authn, authHandler.Me)

	// Vacancies (listado y detalle públicos)
	vacancies := api.Group("/vacancies")
	vacancyHandler := NewVacancyHandler(deps.VacancyUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	vacancies.Get("/", vacancyHandler.List)
	vacancies.Get("/:id", vacancyHandler.Get)
	vacancies.Post("/", authn, employerOrAdmin, vacancyHandler.Create)
	vacancies.Put("/:id", authn, employerOrAdmin, vacancyHandler.Update)
	vacancies.Get("/:id/applications/report", authn, employerOrAdmin, reportHandler.ApplicantsPDF)

	api.Get("/employer/vacancies", authn, employerOrAdmin, hasCompany, vacancyHandler.ListEmployer)
	api.Get("/feed/vacancies.xml", reportHandler.VacancyFeed)

	// Applications (el caso de uso acota por rol)
	applications := api.Group("/applications", authn)
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	applications.Get("/", applicationHandler.List)
	applications.Post("/", seeker, applicationHandler.Create)
	applications.Put("/:id", applicationHandler.UpdateStatus)

	// Saved jobs
	saved := api.Group("/saved-jobs", authn, seekerOrAdmin)
	savedHandler := NewSavedJobsHandler(deps.SavedJobsUC)
	saved.Get("/:job_seeker_id", savedHandler.List)
	saved.Post("/:job_seeker_id/:vacancy_id", savedHandler.Toggle)

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", authn, admin, companyHandler.Create)
	companies.Put("/:id", authn, employerOrAdmin, companyHandler.Update)

	// Resumes
	resumes := api.Group("/resumes", authn, seeker)
	resumeHandler := NewResumeHandler(deps.ResumeUC)
	resumes.Get("/", resumeHandler.List)
	resumes.Post("/", resumeHandler.Create)
	resumes.Put("/:id", resumeHandler.Update)
	resumes.Delete("/:id", resumeHandler.Delete)
	resumes.Post("/:id/primary", resumeHandler.SetPrimary)

	// Dashboards
	dashboard := api.Group("/dashboard", authn)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/employer", RequireRole(entity.RoleEmployer), hasCompany, dashboardHandler.Employer)
	dashboard.Get("/admin", admin, dashboardHandler.Admin)
}
