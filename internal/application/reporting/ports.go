package reporting

import (
	"time"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// ApplicantsReportGenerator genera el PDF de postulantes de una vacante.
type ApplicantsReportGenerator interface {
	GenerateApplicantsReport(
		vacancy *entity.VacancyListing,
		applicants []*entity.ApplicationListing,
		generatedAt time.Time,
	) ([]byte, error)
}

// VacancyFeedBuilder serializa vacantes en el formato XML que consumen los agregadores de empleo.
type VacancyFeedBuilder interface {
	BuildVacancyFeed(vacancies []*entity.VacancyListing, generatedAt time.Time) ([]byte, error)
}
