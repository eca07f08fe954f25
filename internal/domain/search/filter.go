// Package search implementa el filtro de vacantes: un predicado puro sobre los criterios del listado.
// El adaptador de Postgres traduce el mismo predicado a SQL; el almacén en memoria usa Matches.
package search

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// Params criterios tal como llegan en la query string (todos opcionales).
type Params struct {
	Search          string
	Location        string
	EmploymentType  string
	ExperienceLevel string
	SalaryMin       string
	SalaryMax       string
	CompanyID       string
	Status          string
}

// Criteria criterios normalizados. El valor cero de cada campo no restringe el resultado.
type Criteria struct {
	Search          string
	Location        string
	EmploymentType  string
	ExperienceLevel string
	SalaryMin       *decimal.Decimal // nil = sin cota inferior (0)
	SalaryMax       *decimal.Decimal // nil = sin cota superior (+inf)
	CompanyID       string
	Status          string
}

// Parse normaliza Params. Nunca falla: textos en blanco son comodines y un salario no numérico
// se trata como cota ausente.
func Parse(p Params) Criteria {
	return Criteria{
		Search:          strings.TrimSpace(p.Search),
		Location:        strings.TrimSpace(p.Location),
		EmploymentType:  strings.TrimSpace(p.EmploymentType),
		ExperienceLevel: strings.TrimSpace(p.ExperienceLevel),
		SalaryMin:       parseBound(p.SalaryMin),
		SalaryMax:       parseBound(p.SalaryMax),
		CompanyID:       strings.TrimSpace(p.CompanyID),
		Status:          strings.TrimSpace(p.Status),
	}
}

func parseBound(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// IsZero indica si ningún criterio está definido.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Location == "" && c.EmploymentType == "" && c.ExperienceLevel == "" &&
		c.SalaryMin == nil && c.SalaryMax == nil && c.CompanyID == "" && c.Status == ""
}

// Matches indica si v cumple todos los criterios definidos en c.
func Matches(v *entity.Vacancy, c Criteria) bool {
	return newMatcher(c).match(v)
}

// Filter devuelve, en el orden original, las vacantes que cumplen c. Una sola pasada; no modifica vs.
func Filter(vs []*entity.Vacancy, c Criteria) []*entity.Vacancy {
	m := newMatcher(c)
	out := make([]*entity.Vacancy, 0, len(vs))
	for _, v := range vs {
		if m.match(v) {
			out = append(out, v)
		}
	}
	return out
}

// matcher precalcula los textos plegados de los criterios.
// cases.Caser guarda estado, por eso se crea uno por llamada y no se comparte.
type matcher struct {
	c        Criteria
	fold     cases.Caser
	search   string
	location string
}

func newMatcher(c Criteria) *matcher {
	m := &matcher{c: c, fold: cases.Fold()}
	if c.Search != "" {
		m.search = m.fold.String(c.Search)
	}
	if c.Location != "" {
		m.location = m.fold.String(c.Location)
	}
	return m
}

func (m *matcher) match(v *entity.Vacancy) bool {
	if v == nil {
		return false
	}
	c := m.c
	if c.Status != "" && v.Status != c.Status {
		return false
	}
	if c.CompanyID != "" && v.CompanyID != c.CompanyID {
		return false
	}
	if c.EmploymentType != "" && v.EmploymentType != c.EmploymentType {
		return false
	}
	if c.ExperienceLevel != "" && v.Level != c.ExperienceLevel {
		return false
	}
	if m.search != "" &&
		!strings.Contains(m.fold.String(v.Title), m.search) &&
		!strings.Contains(m.fold.String(v.Description), m.search) {
		return false
	}
	if m.location != "" && !strings.Contains(m.fold.String(v.Location), m.location) {
		return false
	}
	return salaryWithin(v, c)
}

// salaryWithin aplica la regla de contención: la banda de la vacante debe caber en la del filtro.
// Una cota de la vacante ausente o en cero no restringe.
func salaryWithin(v *entity.Vacancy, c Criteria) bool {
	if c.SalaryMin != nil && isSet(v.SalaryMin) && v.SalaryMin.LessThan(*c.SalaryMin) {
		return false
	}
	if c.SalaryMax != nil && isSet(v.SalaryMax) && v.SalaryMax.GreaterThan(*c.SalaryMax) {
		return false
	}
	return true
}

func isSet(d *decimal.Decimal) bool {
	return d != nil && !d.IsZero()
}
