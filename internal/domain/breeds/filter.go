package breeds

import "strings"

// Filter devuelve, en el orden original, las razas cuyo nombre o categoría contiene
// query (sin distinguir mayúsculas) y cuya categoría coincide con animal.
// animal vacío o "all" no filtra por categoría; query vacío acepta todo.
func Filter(records []Breed, query, animal string) []Breed {
	q := strings.ToLower(query)
	a := strings.ToLower(strings.TrimSpace(animal))

	out := make([]Breed, 0, len(records))
	for _, b := range records {
		if a != "" && a != AllAnimals && strings.ToLower(string(b.Animal)) != a {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Name), q) &&
			!strings.Contains(strings.ToLower(string(b.Animal)), q) {
			continue
		}
		out = append(out, b)
	}
	return out
}
