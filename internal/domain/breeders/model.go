package breeders

// AllSpecialties es el valor del selector que no filtra por especialidad.
const AllSpecialties = "all"

// Breeder es una entrada del directorio de criadores. Inmutable.
type Breeder struct {
	ID          string
	Name        string
	Location    string   // "Ciudad, Estado"
	Distance    string   // texto ya formateado, ej "2.5 km"
	Specialties []string // ej "Gir Cattle", "Murrah Buffalo"
	Rating      float64
	Phone       string
	Verified    bool
}

// SpecialtyOptions devuelve los valores del selector en el orden que muestra la UI.
func SpecialtyOptions() []string {
	return []string{AllSpecialties, "cattle", "buffalo", "goat", "sheep", "horse"}
}
