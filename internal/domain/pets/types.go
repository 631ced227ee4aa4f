package pets

// Species define as espécies aceitas no cadastro.
// @Enum dog, cat, bird, rabbit, hamster, fish, turtle, other
type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesBird    Species = "bird"
	SpeciesRabbit  Species = "rabbit"
	SpeciesHamster Species = "hamster"
	SpeciesFish    Species = "fish"
	SpeciesTurtle  Species = "turtle"
	SpeciesOther   Species = "other"
)

// Size é o porte da mascota.
// @Enum small, medium, large, giant
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeGiant  Size = "giant"
)

// AgeBracket é a faixa etária declarada pelo tutor (opcional).
type AgeBracket string

const (
	AgeFilhote AgeBracket = "filhote"
	AgeAdulto  AgeBracket = "adulto"
	AgeIdoso   AgeBracket = "idoso"
)

// Temperament é o temperamento observado (opcional).
type Temperament string

const (
	TemperamentCalm       Temperament = "calm"
	TemperamentPlayful    Temperament = "playful"
	TemperamentShy        Temperament = "shy"
	TemperamentAggressive Temperament = "aggressive"
	TemperamentUnknown    Temperament = "unknown"
)

func ValidSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit,
		SpeciesHamster, SpeciesFish, SpeciesTurtle, SpeciesOther:
		return true
	}
	return false
}

func ValidSize(s Size) bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeGiant:
		return true
	}
	return false
}

// ValidAgeBracket aceita vazio: faixa etária é opcional.
func ValidAgeBracket(a AgeBracket) bool {
	switch a {
	case "", AgeFilhote, AgeAdulto, AgeIdoso:
		return true
	}
	return false
}

// ValidTemperament aceita vazio: temperamento é opcional.
func ValidTemperament(t Temperament) bool {
	switch t {
	case "", TemperamentCalm, TemperamentPlayful, TemperamentShy,
		TemperamentAggressive, TemperamentUnknown:
		return true
	}
	return false
}
