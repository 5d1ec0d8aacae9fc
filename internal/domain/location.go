package domain

// UF is a Brazilian federative unit as returned by the IBGE
// localidades API.
type UF struct {
	ID    uint   `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// City is a municipality within a UF.
type City struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}
