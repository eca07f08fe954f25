package entity

// Actor identidad autenticada que ejecuta una operación.
// Se construye por request a partir del token verificado y se pasa explícitamente a los casos de uso.
type Actor struct {
	UserID    string
	Role      string
	CompanyID string
}

// IsAdmin indica si el actor es administrador.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// IsEmployer indica si el actor es empleador.
func (a Actor) IsEmployer() bool { return a.Role == RoleEmployer }

// IsJobSeeker indica si el actor es candidato.
func (a Actor) IsJobSeeker() bool { return a.Role == RoleJobSeeker }

// ManagesCompany indica si el actor puede administrar recursos de la empresa companyID.
func (a Actor) ManagesCompany(companyID string) bool {
	if a.IsAdmin() {
		return true
	}
	return a.IsEmployer() && a.CompanyID != "" && a.CompanyID == companyID
}

// ActsFor indica si el actor puede operar en nombre del usuario userID (él mismo o un admin).
func (a Actor) ActsFor(userID string) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == userID)
}
