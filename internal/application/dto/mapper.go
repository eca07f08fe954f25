package dto

import "github.com/jhoicas/jobboard-api/internal/domain/entity"

// Conversores entidad -> DTO compartidos por los distintos casos de uso.

// FromUser convierte un User en UserResponse.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromCompany convierte una Company (más su conteo de vacantes activas) en CompanyResponse.
func FromCompany(c *entity.Company, activeVacancies int) CompanyResponse {
	return CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Description:     c.Description,
		Logo:            c.Logo,
		Website:         c.Website,
		Location:        c.Location,
		Industry:        c.Industry,
		EmployeeCount:   c.EmployeeCount,
		Rating:          c.Rating,
		ActiveVacancies: activeVacancies,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// FromVacancy convierte una Vacancy sin datos de empresa.
func FromVacancy(v *entity.Vacancy) VacancyResponse {
	skills := v.Skills
	if skills == nil {
		skills = []string{}
	}
	return VacancyResponse{
		ID:                v.ID,
		CompanyID:         v.CompanyID,
		Title:             v.Title,
		Description:       v.Description,
		SalaryMin:         v.SalaryMin,
		SalaryMax:         v.SalaryMax,
		Currency:          v.Currency,
		Location:          v.Location,
		EmploymentType:    v.EmploymentType,
		Level:             v.Level,
		Skills:            skills,
		Status:            v.Status,
		ApplicationsCount: v.ApplicationsCount,
		ViewsCount:        v.ViewsCount,
		Deadline:          v.Deadline,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

// FromVacancyListing convierte una vacante con los campos de presentación de su empresa.
func FromVacancyListing(l *entity.VacancyListing) VacancyResponse {
	out := FromVacancy(&l.Vacancy)
	out.CompanyName = l.CompanyName
	out.CompanyLogo = l.CompanyLogo
	return out
}

// FromVacancyListings convierte un listado completo.
func FromVacancyListings(list []*entity.VacancyListing) []VacancyResponse {
	items := make([]VacancyResponse, 0, len(list))
	for _, l := range list {
		items = append(items, FromVacancyListing(l))
	}
	return items
}

// FromApplication convierte una Application sin datos de presentación.
func FromApplication(a *entity.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobSeekerID: a.UserID,
		VacancyID:   a.VacancyID,
		ResumeID:    a.ResumeID,
		CoverLetter: a.CoverLetter,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromApplicationListing convierte una postulación con datos de vacante y candidato.
func FromApplicationListing(l *entity.ApplicationListing) ApplicationResponse {
	out := FromApplication(&l.Application)
	out.VacancyTitle = l.VacancyTitle
	out.CompanyName = l.CompanyName
	out.ApplicantName = l.ApplicantName
	out.ApplicantEmail = l.ApplicantEmail
	return out
}

// FromResume convierte un Resume.
func FromResume(r *entity.Resume) ResumeResponse {
	return ResumeResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		FileURL:   r.FileURL,
		IsPublic:  r.IsPublic,
		IsPrimary: r.IsPrimary,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
