package breeds

const placeholderImage = "/placeholder.svg"

// Seed devuelve una copia del catálogo de razas indias (6 bovinas, 6 bufalinas).
// El orden es el de presentación y se conserva en todos los listados.
func Seed() []Breed {
	out := make([]Breed, len(seed))
	for i, b := range seed {
		b.Characteristics = append([]string(nil), b.Characteristics...)
		b.Care = append([]string(nil), b.Care...)
		out[i] = b
	}
	return out
}

var seed = []Breed{
	{
		ID:              "1",
		Name:            "Gir",
		Animal:          AnimalCattle,
		Origin:          "Gujarat, India",
		Characteristics: []string{"Medium to large size", "White with reddish-brown patches", "Drooping ears", "Prominent forehead"},
		MilkYield:       "1,200-1,800 liters per lactation",
		Climate:         "Hot and humid tropical climate",
		Care:            []string{"Regular vaccination", "Adequate shelter", "Balanced nutrition", "Clean water supply"},
		Image:           placeholderImage,
	},
	{
		ID:              "2",
		Name:            "Sahiwal",
		Animal:          AnimalCattle,
		Origin:          "Punjab, Pakistan (now in India)",
		Characteristics: []string{"Reddish dun color", "Medium to large frame", "Well-developed udder", "Heat tolerant"},
		MilkYield:       "2,270-2,500 liters per lactation",
		Climate:         "Hot and dry climate with good heat tolerance",
		Care:            []string{"Heat stress management", "Quality feed", "Regular milking", "Disease prevention"},
		Image:           placeholderImage,
	},
	{
		ID:              "3",
		Name:            "Red Sindhi",
		Animal:          AnimalCattle,
		Origin:          "Sindh region (now Pakistan)",
		Characteristics: []string{"Red color", "Compact body", "Good mothering ability", "Tick resistant"},
		MilkYield:       "1,400-2,000 liters per lactation",
		Climate:         "Hot and arid climate adaptability",
		Care:            []string{"Parasite control", "Mineral supplements", "Shade provision", "Regular health checks"},
		Image:           placeholderImage,
	},
	{
		ID:              "4",
		Name:            "Tharparkar",
		Animal:          AnimalCattle,
		Origin:          "Thar Desert, Rajasthan",
		Characteristics: []string{"White or light grey", "Medium size", "Drought tolerant", "Dual purpose"},
		MilkYield:       "1,800-2,200 liters per lactation",
		Climate:         "Arid and semi-arid regions",
		Care:            []string{"Water conservation", "Desert grazing", "Salt tolerance", "Heat management"},
		Image:           placeholderImage,
	},
	{
		ID:              "5",
		Name:            "Hariana",
		Animal:          AnimalCattle,
		Origin:          "Haryana, India",
		Characteristics: []string{"Greyish white", "Strong and compact", "Good draught capacity", "Hardy breed"},
		MilkYield:       "1,000-1,500 liters per lactation",
		Climate:         "Semi-arid climate with temperature extremes",
		Care:            []string{"Work management", "Nutritional balance", "Hoof care", "Regular rest"},
		Image:           placeholderImage,
	},
	{
		ID:              "6",
		Name:            "Kankrej",
		Animal:          AnimalCattle,
		Origin:          "Gujarat-Rajasthan border",
		Characteristics: []string{"Silver grey", "Large size", "Lyre-shaped horns", "Good stamina"},
		MilkYield:       "1,200-1,800 liters per lactation",
		Climate:         "Hot and dry climate tolerance",
		Care:            []string{"Extensive grazing", "Heat shelter", "Quality water", "Disease monitoring"},
		Image:           placeholderImage,
	},
	{
		ID:              "7",
		Name:            "Murrah",
		Animal:          AnimalBuffalo,
		Origin:          "Haryana, India",
		Characteristics: []string{"Large body size", "Black coat", "Curved horns", "High milk production"},
		MilkYield:       "1,800-2,500 liters per lactation",
		Climate:         "Subtropical climate with high humidity",
		Care:            []string{"Wallowing facilities", "High protein feed", "Regular health check-ups", "Proper ventilation"},
		Image:           placeholderImage,
	},
	{
		ID:              "8",
		Name:            "Nili-Ravi",
		Animal:          AnimalBuffalo,
		Origin:          "Punjab region",
		Characteristics: []string{"Large size", "Black with white markings", "Wall eyes", "Excellent milk producer"},
		MilkYield:       "2,000-3,000 liters per lactation",
		Climate:         "Riverine areas with high humidity",
		Care:            []string{"Water bodies access", "Rich feeding", "Breeding management", "Heat stress relief"},
		Image:           placeholderImage,
	},
	{
		ID:              "9",
		Name:            "Mehsana",
		Animal:          AnimalBuffalo,
		Origin:          "Gujarat, India",
		Characteristics: []string{"Medium to large", "Black color", "Medium horns", "Good longevity"},
		MilkYield:       "1,500-2,200 liters per lactation",
		Climate:         "Semi-arid to humid subtropical",
		Care:            []string{"Balanced nutrition", "Regular breeding", "Disease prevention", "Water management"},
		Image:           placeholderImage,
	},
	{
		ID:              "10",
		Name:            "Surti",
		Animal:          AnimalBuffalo,
		Origin:          "Gujarat, India",
		Characteristics: []string{"Compact size", "Black coat", "Short legs", "High butterfat milk"},
		MilkYield:       "1,200-1,800 liters per lactation",
		Climate:         "Coastal and riverine climate",
		Care:            []string{"Quality fodder", "Clean environment", "Regular milking", "Health monitoring"},
		Image:           placeholderImage,
	},
	{
		ID:              "11",
		Name:            "Jaffarabadi",
		Animal:          AnimalBuffalo,
		Origin:          "Gujarat, India",
		Characteristics: []string{"Very large size", "Black color", "Massive build", "Heavy milk producer"},
		MilkYield:       "2,500-3,500 liters per lactation",
		Climate:         "Coastal humid climate",
		Care:            []string{"High-quality feed", "Spacious housing", "Regular exercise", "Professional management"},
		Image:           placeholderImage,
	},
	{
		ID:              "12",
		Name:            "Bhadawari",
		Animal:          AnimalBuffalo,
		Origin:          "Uttar Pradesh, Madhya Pradesh",
		Characteristics: []string{"Small to medium", "Light copper color", "Compact udder", "Hardy breed"},
		MilkYield:       "900-1,400 liters per lactation",
		Climate:         "Sub-tropical climate with seasonal variations",
		Care:            []string{"Local feed utilization", "Simple housing", "Basic healthcare", "Traditional management"},
		Image:           placeholderImage,
	},
}
