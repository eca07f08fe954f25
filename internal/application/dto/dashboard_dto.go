package dto

// EmployerDashboardDTO respuesta de GET /api/dashboard/employer.
type EmployerDashboardDTO struct {
	CompanyID            string         `json:"company_id"`
	VacanciesByStatus    map[string]int `json:"vacancies_by_status"`
	ActiveVacancies      int            `json:"active_vacancies"`
	TotalViews           int            `json:"total_views"`
	TotalApplications    int            `json:"total_applications"` // acumulado; no baja con rechazos o retiros
	ApplicationsByStatus map[string]int `json:"applications_by_status"`
}

// AdminDashboardDTO respuesta de GET /api/dashboard/admin.
type AdminDashboardDTO struct {
	UsersByRole          map[string]int `json:"users_by_role"`
	Companies            int            `json:"companies"`
	VacanciesByStatus    map[string]int `json:"vacancies_by_status"`
	ApplicationsByStatus map[string]int `json:"applications_by_status"`
}
