package pets

import "time"

// Pet é o perfil de uma mascota vinculada a um tutor.
type Pet struct {
	ID         string
	CustomerID string

	Name    string
	Species Species
	Size    Size

	// Atributos opcionais declarados no cadastro.
	Breed       string
	AgeBracket  AgeBracket
	Temperament Temperament
	Neutered    bool
	Vaccinated  bool

	Allergies    string
	MedicalNotes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
