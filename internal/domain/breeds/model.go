package breeds

// Animal es la categoría de ganado de una raza.
type Animal string

const (
	AnimalCattle  Animal = "cattle"
	AnimalBuffalo Animal = "buffalo"
)

// AllAnimals es el valor del selector que no filtra por categoría.
const AllAnimals = "all"

// Breed es la ficha descriptiva de una raza. Inmutable: se carga una vez desde el seed.
type Breed struct {
	ID              string
	Name            string
	Animal          Animal
	Origin          string
	Characteristics []string // orden de presentación
	MilkYield       string   // rango en texto, ej "1,200-1,800 liters per lactation"
	Climate         string
	Care            []string // orden de presentación
	Image           string
}

// AnimalOptions devuelve los valores del selector en el orden que muestra la UI.
func AnimalOptions() []string {
	return []string{AllAnimals, string(AnimalCattle), string(AnimalBuffalo)}
}
