package breeders

// Seed devuelve una copia del directorio de criadores.
func Seed() []Breeder {
	out := make([]Breeder, len(seed))
	for i, b := range seed {
		b.Specialties = append([]string(nil), b.Specialties...)
		out[i] = b
	}
	return out
}

var seed = []Breeder{
	{
		ID:          "1",
		Name:        "Ramesh Dairy Farm",
		Location:    "Anand, Gujarat",
		Distance:    "2.5 km",
		Specialties: []string{"Gir Cattle", "Holstein Friesian"},
		Rating:      4.8,
		Phone:       "+91 98765 43210",
		Verified:    true,
	},
	{
		ID:          "2",
		Name:        "Krishna Buffalo Ranch",
		Location:    "Hisar, Haryana",
		Distance:    "5.2 km",
		Specialties: []string{"Murrah Buffalo", "Nili-Ravi Buffalo"},
		Rating:      4.6,
		Phone:       "+91 98765 43211",
		Verified:    true,
	},
	{
		ID:          "3",
		Name:        "Gopal Goat Farm",
		Location:    "Mathura, Uttar Pradesh",
		Distance:    "8.1 km",
		Specialties: []string{"Jamunapari Goat", "Barbari Goat"},
		Rating:      4.3,
		Phone:       "+91 98765 43212",
		Verified:    false,
	},
	{
		ID:          "4",
		Name:        "Shiva Sheep Station",
		Location:    "Bikaner, Rajasthan",
		Distance:    "12.7 km",
		Specialties: []string{"Marwari Sheep", "Chokla Sheep"},
		Rating:      4.5,
		Phone:       "+91 98765 43213",
		Verified:    true,
	},
}
