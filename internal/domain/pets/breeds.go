package pets

import "strings"

// Catálogo estático de raças usado pelo autocomplete do cadastro.
// É dado de referência, não regra: o campo breed aceita texto livre.
var breedsBySpecies = map[Species][]string{
	SpeciesDog: {
		"SRD (vira-lata)",
		"Labrador Retriever",
		"Golden Retriever",
		"Pastor Alemão",
		"Bulldog Francês",
		"Bulldog Inglês",
		"Poodle",
		"Chihuahua",
		"Beagle",
		"Shih Tzu",
		"Lhasa Apso",
		"Yorkshire Terrier",
		"Pinscher",
		"Rottweiler",
		"Border Collie",
		"Dachshund (Teckel)",
		"Pug",
		"Spitz Alemão (Lulu da Pomerânia)",
	},
	SpeciesCat: {
		"SRD (vira-lata)",
		"Persa",
		"Siamês",
		"Maine Coon",
		"Bengal",
		"Sphynx",
		"Angorá",
		"Ragdoll",
		"British Shorthair",
	},
	SpeciesBird: {
		"Calopsita",
		"Periquito-australiano",
		"Canário",
		"Agapornis",
		"Papagaio-verdadeiro",
	},
	SpeciesRabbit: {
		"Mini Lop",
		"Netherland Dwarf",
		"Lionhead",
		"Rex",
	},
	SpeciesHamster: {
		"Sírio",
		"Anão Russo",
		"Roborovski",
	},
	SpeciesFish: {
		"Betta",
		"Guppy",
		"Kinguio",
		"Tetra Neon",
	},
	SpeciesTurtle: {
		"Tigre d'água",
		"Cágado",
		"Jabuti",
	},
}

// SuggestBreeds filtra o catálogo por substring (case-insensitive).
// Query vazia devolve o catálogo inteiro da espécie.
func SuggestBreeds(species Species, query string) []string {
	all := breedsBySpecies[species]
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]string, 0, len(all))
	for _, b := range all {
		if query == "" || strings.Contains(strings.ToLower(b), query) {
			out = append(out, b)
		}
	}
	return out
}
