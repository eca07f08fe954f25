// Package pdf genera el reporte de postulantes de una vacante.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + Vacante   │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ubicación / Tipo / Nivel / Salario / Estado        │
//	│  MÉTRICAS: Postulaciones / Visitas / Por estado              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Candidato | Email | Estado | Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/jobboard-api/internal/application/reporting"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeader  = &props.Color{Red: 230, Green: 236, Blue: 243}
)

var statusLabels = map[string]string{
	entity.ApplicationStatusPending:   "Pendiente",
	entity.ApplicationStatusReviewing: "En revisión",
	entity.ApplicationStatusAccepted:  "Aceptada",
	entity.ApplicationStatusRejected:  "Rechazada",
	entity.ApplicationStatusWithdrawn: "Retirada",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reporting.ApplicantsReportGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reporting.ApplicantsReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateApplicantsReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateApplicantsReport(
	vacancy *entity.VacancyListing,
	applicants []*entity.ApplicationListing,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Postulantes: "+vacancy.Title, true).
		WithAuthor(vacancy.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(vacancy, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(&vacancy.Vacancy))
	m.AddRows(metricsRow(&vacancy.Vacancy, applicants))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(applicants) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("La vacante aún no recibe postulaciones.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range tableDetailRows(applicants) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Documento confidencial. Contiene datos personales de candidatos; "+
			"uso exclusivo del proceso de selección.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + título (izq) y fecha de generación (der).
func headerRow(v *entity.VacancyListing, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(nonEmpty(v.CompanyName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(v.Title, props.Text{
				Size: 10, Top: 9,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE POSTULANTES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: datos principales de la vacante.
func summaryRow(v *entity.Vacancy) core.Row {
	deadline := "sin fecha límite"
	if v.Deadline != nil {
		deadline = "cierra " + v.Deadline.Format("02/01/2006")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("VACANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ubicación: %s   |   Tipo: %s   |   Nivel: %s   |   Estado: %s",
				nonEmpty(v.Location, "—"),
				nonEmpty(v.EmploymentType, "—"),
				nonEmpty(v.Level, "—"),
				v.Status,
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("Salario: %s   |   %s", salaryRange(v), deadline),
				props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

// metricsRow: contadores de la vacante y postulaciones por estado.
func metricsRow(v *entity.Vacancy, applicants []*entity.ApplicationListing) core.Row {
	byStatus := make(map[string]int, len(statusLabels))
	for _, a := range applicants {
		byStatus[a.Status]++
	}
	parts := make([]string, 0, len(statusLabels))
	for _, s := range []string{
		entity.ApplicationStatusPending, entity.ApplicationStatusReviewing,
		entity.ApplicationStatusAccepted, entity.ApplicationStatusRejected,
		entity.ApplicationStatusWithdrawn,
	} {
		if n := byStatus[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", statusLabels[s], humanize.Comma(int64(n))))
		}
	}

	return row.New(12).Add(
		col.New(4).Add(
			text.New("Postulaciones recibidas", props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(humanize.Comma(int64(v.ApplicationsCount)), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 5, Color: colorPrimary,
			}),
		),
		col.New(3).Add(
			text.New("Visitas", props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(humanize.Comma(int64(v.ViewsCount)), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 5, Color: colorPrimary,
			}),
		),
		col.New(5).Add(
			text.New("Por estado", props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(nonEmpty(strings.Join(parts, "  ·  "), "—"), props.Text{Size: 8, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de postulantes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Candidato", 4, align.Left),
		h("Email", 3, align.Left),
		h("Estado", 2, align.Center),
		h("Fecha", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

// tableDetailRows: una fila por postulación.
func tableDetailRows(applicants []*entity.ApplicationListing) []core.Row {
	result := make([]core.Row, 0, len(applicants))
	for i, a := range applicants {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				humanize.Comma(int64(i+1)),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				nonEmpty(a.ApplicantName, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(a.ApplicantEmail, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(statusLabels[a.Status], a.Status),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				a.CreatedAt.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// salaryRange da formato "$70,000 – $120,000 USD". Las cotas ausentes o en cero se omiten.
func salaryRange(v *entity.Vacancy) string {
	lo, hi := money(v.SalaryMin), money(v.SalaryMax)
	var s string
	switch {
	case lo != "" && hi != "":
		s = lo + " – " + hi
	case lo != "":
		s = "desde " + lo
	case hi != "":
		s = "hasta " + hi
	default:
		return "a convenir"
	}
	if v.Currency != "" {
		s += " " + v.Currency
	}
	return s
}

func money(d *decimal.Decimal) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return "$" + humanize.Comma(d.IntPart())
}
