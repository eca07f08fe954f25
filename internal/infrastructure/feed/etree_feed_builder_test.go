package feed_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/feed"
)

func TestBuildVacancyFeed(t *testing.T) {
	lo, hi := decimal.NewFromInt(70000), decimal.NewFromInt(120000)
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	vacancies := []*entity.VacancyListing{
		{
			Vacancy: entity.Vacancy{
				ID: "v1", Title: "Backend <Go> Engineer", Description: "<p>Pagos & APIs</p>",
				Location: "Bogotá", EmploymentType: entity.EmploymentFullTime, Level: entity.LevelSenior,
				SalaryMin: &lo, SalaryMax: &hi, Currency: "USD", Skills: []string{"Go", "SQL"}, CreatedAt: created,
			},
			CompanyName: "Acme",
		},
		{
			Vacancy:     entity.Vacancy{ID: "v2", Title: "Intern", EmploymentType: entity.EmploymentInternship, Level: entity.LevelEntry, CreatedAt: created},
			CompanyName: "Otra",
		},
	}

	b := feed.NewEtreeFeedBuilder("jobboard-api", "https://jobs.example.com/")
	out, err := b.BuildVacancyFeed(vacancies, created)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("source")
	require.NotNil(t, root)
	assert.Equal(t, "jobboard-api", root.SelectElement("publisher").Text())

	jobs := root.SelectElements("job")
	require.Len(t, jobs, 2)
	first := jobs[0]
	assert.Equal(t, "Backend <Go> Engineer", first.SelectElement("title").Text())
	assert.Equal(t, "<p>Pagos & APIs</p>", first.SelectElement("description").Text())
	assert.Equal(t, "https://jobs.example.com/vacancies/v1", first.SelectElement("url").Text())
	assert.Equal(t, "70000-120000 USD", first.SelectElement("salary").Text())
	assert.Equal(t, "Go, SQL", first.SelectElement("skills").Text())

	assert.Nil(t, jobs[1].SelectElement("salary"))
	assert.Nil(t, jobs[1].SelectElement("city"))
}
