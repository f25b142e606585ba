package breeders

import "strings"

// Filter devuelve, en el orden original, los criadores cuya ubicación contiene location
// y que tienen alguna especialidad que contiene specialty. Ambas comparaciones ignoran
// mayúsculas; specialty vacío o "all" no filtra.
func Filter(records []Breeder, location, specialty string) []Breeder {
	loc := strings.ToLower(location)
	spec := strings.ToLower(strings.TrimSpace(specialty))

	out := make([]Breeder, 0, len(records))
	for _, b := range records {
		if !strings.Contains(strings.ToLower(b.Location), loc) {
			continue
		}
		if spec != "" && spec != AllSpecialties && !hasSpecialty(b, spec) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func hasSpecialty(b Breeder, lowered string) bool {
	for _, s := range b.Specialties {
		if strings.Contains(strings.ToLower(s), lowered) {
			return true
		}
	}
	return false
}
