// Package feed serializa vacantes en el XML de agregadores de empleo (<source><job>...</job></source>).
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/jobboard-api/internal/application/reporting"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

var _ reporting.VacancyFeedBuilder = (*EtreeFeedBuilder)(nil)

// EtreeFeedBuilder implementa reporting.VacancyFeedBuilder con beevik/etree.
type EtreeFeedBuilder struct {
	publisher string
	baseURL   string
}

// NewEtreeFeedBuilder construye el generador. baseURL se usa para el enlace de cada vacante.
func NewEtreeFeedBuilder(publisher, baseURL string) *EtreeFeedBuilder {
	return &EtreeFeedBuilder{publisher: publisher, baseURL: strings.TrimRight(baseURL, "/")}
}

// BuildVacancyFeed genera el documento completo.
func (b *EtreeFeedBuilder) BuildVacancyFeed(vacancies []*entity.VacancyListing, generatedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("source")
	root.CreateElement("publisher").SetText(b.publisher)
	root.CreateElement("publisherurl").SetText(b.baseURL)
	root.CreateElement("lastBuildDate").SetText(generatedAt.UTC().Format(time.RFC1123Z))

	for _, v := range vacancies {
		job := root.CreateElement("job")
		job.CreateElement("referencenumber").CreateCData(v.ID)
		job.CreateElement("title").CreateCData(v.Title)
		job.CreateElement("date").SetText(v.CreatedAt.UTC().Format(time.RFC1123Z))
		job.CreateElement("url").CreateCData(b.baseURL + "/vacancies/" + v.ID)
		job.CreateElement("company").CreateCData(v.CompanyName)
		if v.Location != "" {
			job.CreateElement("city").CreateCData(v.Location)
		}
		job.CreateElement("description").CreateCData(v.Description)
		if s := salary(&v.Vacancy); s != "" {
			job.CreateElement("salary").SetText(s)
		}
		job.CreateElement("jobtype").SetText(v.EmploymentType)
		job.CreateElement("experience").SetText(v.Level)
		if len(v.Skills) > 0 {
			job.CreateElement("skills").CreateCData(strings.Join(v.Skills, ", "))
		}
		if v.Deadline != nil {
			job.CreateElement("expirationdate").SetText(v.Deadline.UTC().Format("2006-01-02"))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("feed: serializar: %w", err)
	}
	return out, nil
}

// salary "min-max CUR", "min+ CUR", "hasta max CUR" o vacío. Una cota en cero se omite.
func salary(v *entity.Vacancy) string {
	var lo, hi string
	if v.SalaryMin != nil && !v.SalaryMin.IsZero() {
		lo = v.SalaryMin.String()
	}
	if v.SalaryMax != nil && !v.SalaryMax.IsZero() {
		hi = v.SalaryMax.String()
	}
	var s string
	switch {
	case lo != "" && hi != "":
		s = lo + "-" + hi
	case lo != "":
		s = lo + "+"
	case hi != "":
		s = "hasta " + hi
	default:
		return ""
	}
	if v.Currency != "" {
		s += " " + v.Currency
	}
	return s
}
