package domain

import "time"

// Job es una oferta de trabajo publicada. No pertenece a ningún usuario.
type Job struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	CompanyName    string     `json:"company_name"`
	CompanyWebsite string     `json:"company_website"`
	About          string     `json:"about"`
	Location       string     `json:"location"`
	LocationType   string     `json:"location_type"`
	Seniority      string     `json:"seniority"`
	Type           string     `json:"type"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"-"`
}

// JobFilter acota un listado de ofertas. Los campos de texto libre se
// comparan por contención; location_type, seniority y type por igualdad.
type JobFilter struct {
	Title        string
	CompanyName  string
	Location     string
	LocationType string
	Seniority    string
	Type         string
}

// IsZero indica si el filtro no acota nada.
func (f JobFilter) IsZero() bool {
	return f == JobFilter{}
}
