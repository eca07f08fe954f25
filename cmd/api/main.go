package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/jhoicas/jobboard-api/internal/application/analytics"
	"github.com/jhoicas/jobboard-api/internal/application/auth"
	"github.com/jhoicas/jobboard-api/internal/application/recruitment"
	"github.com/jhoicas/jobboard-api/internal/application/reporting"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
	infrafeed "github.com/jhoicas/jobboard-api/internal/infrastructure/feed"
	infrapdf "github.com/jhoicas/jobboard-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/jobboard-api/internal/interfaces/http"
	"github.com/jhoicas/jobboard-api/pkg/config"
	"github.com/jhoicas/jobboard-api/pkg/jwt"
	"github.com/jhoicas/jobboard-api/pkg/logger"

	_ "github.com/jhoicas/jobboard-api/docs"
)

// @title                       Job Board API
// @version                     1.0
// @description                 Vacantes, postulaciones y candidatos.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer store.close()

	tokens := jwt.NewSigner(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute)
	authUC := auth.NewAuthUseCase(store.tx, store.users, tokens)
	vacancyUC := usecase.NewVacancyUseCase(store.tx, store.vacancies, store.companies, cfg.Listing.PageSize)
	companyUC := usecase.NewCompanyUseCase(store.companies)
	resumeUC := usecase.NewResumeUseCase(store.tx, store.resumes)
	applicationUC := recruitment.NewApplicationUseCase(store.tx, store.applications, store.resumes)
	savedJobsUC := recruitment.NewSavedJobsUseCase(store.tx, store.saved)
	dashboardUC := appanalytics.NewDashboardUseCase(store.analytics)

	// Reporte PDF de postulantes y feed XML para agregadores
	reportUC := reporting.NewReportUseCase(
		store.vacancies, store.applications,
		infrapdf.NewMarotoPDFGenerator(),
		infrafeed.NewEtreeFeedBuilder(cfg.App.Name, cfg.App.PublicURL),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		// Params y Query devuelven copias: el almacén en memoria conserva los ids recibidos.
		Immutable: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		VacancyUC:     vacancyUC,
		CompanyUC:     companyUC,
		ResumeUC:      resumeUC,
		ApplicationUC: applicationUC,
		SavedJobsUC:   savedJobsUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		Store:         store.pinger,
		Tokens:        tokens,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
