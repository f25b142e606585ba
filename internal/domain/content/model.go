package content

// Textos estáticos de las páginas públicas. Son constantes: cada llamada devuelve una copia.

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type Home struct {
	Headline    string    `json:"headline"`
	Subheadline string    `json:"subheadline"`
	Stats       []Stat    `json:"stats"`
	Features    []Feature `json:"features"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TeamMember struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Expertise string `json:"expertise"`
}

type About struct {
	Intro        string        `json:"intro"`
	Mission      []string      `json:"mission"`
	Vision       []string      `json:"vision"`
	Achievements []Achievement `json:"achievements"`
	Team         []TeamMember  `json:"team"`
}

type Channel struct {
	Title       string `json:"title"`
	Details     string `json:"details"`
	Description string `json:"description"`
}

type Hours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ContactInfo struct {
	Channels      []Channel `json:"channels"`
	SupportHours  []Hours   `json:"support_hours"`
	HoursTimezone string    `json:"hours_timezone"`
	FAQ           []FAQ     `json:"faq"`
}

func HomePage() Home {
	return Home{
		Headline:    "Smart Livestock Breeding with AI",
		Subheadline: "Revolutionize your livestock farming with AI-powered breed recognition, intelligent mating recommendations, and expert guidance for optimal yields.",
		Stats: []Stat{
			{Number: "50+", Label: "Livestock Breeds"},
			{Number: "98%", Label: "Recognition Accuracy"},
			{Number: "10K+", Label: "Active Farmers"},
			{Number: "28", Label: "States Covered"},
		},
		Features: []Feature{
			{Title: "AI Breed Recognition", Description: "Upload livestock images for instant breed identification with 98% accuracy", Link: "/recognition"},
			{Title: "Breed Information", Description: "Comprehensive database of Indian livestock breeds with care guidelines", Link: "/breeds"},
			{Title: "Find Breeders", Description: "Locate verified breeders in your area with quality breeding stock", Link: "/breeders"},
			{Title: "AI Assistant", Description: "Get expert advice on breeding, care, and livestock management", Link: "/chat"},
		},
	}
}

func AboutPage() About {
	return About{
		Intro: "Empowering Indian farmers and livestock breeders through AI-driven breed recognition, smart breeding recommendations, and comprehensive livestock management solutions.",
		Mission: []string{
			"To revolutionize livestock management in India by providing cutting-edge AI technology that helps farmers make informed breeding decisions, improve productivity, and preserve indigenous breed diversity.",
			"We believe in sustainable agriculture that combines traditional knowledge with modern technology to create a prosperous future for Indian farmers.",
		},
		Vision: []string{
			"To become India's leading platform for livestock breed recognition and breeding optimization, supporting the livelihoods of millions of farmers and contributing to food security.",
			"We envision a future where every farmer has access to intelligent breeding guidance, helping them achieve optimal yields while preserving India's rich livestock heritage.",
		},
		Achievements: []Achievement{
			{Title: "98% Accuracy", Description: "In breed recognition across 50+ Indian livestock breeds"},
			{Title: "10,000+ Farmers", Description: "Successfully using our platform for breeding decisions"},
			{Title: "28 States", Description: "Coverage across India with localized breed information"},
			{Title: "50+ Breeds", Description: "Comprehensive database of Indian livestock breeds"},
		},
		Team: []TeamMember{
			{Name: "Dr. Priya Sharma", Role: "Agricultural AI Specialist", Expertise: "Machine Learning & Livestock"},
			{Name: "Rajesh Kumar", Role: "Full Stack Developer", Expertise: "React & Backend Systems"},
			{Name: "Dr. Vikram Singh", Role: "Veterinary Consultant", Expertise: "Indian Livestock Breeds"},
			{Name: "Anita Patel", Role: "UX Designer", Expertise: "Farmer-Centric Design"},
		},
	}
}

func ContactPage() ContactInfo {
	return ContactInfo{
		Channels: []Channel{
			{Title: "Email Support", Details: "support@yield-ai.com", Description: "Get technical support and general inquiries"},
			{Title: "Phone Support", Details: "+91 98765 43210", Description: "Mon-Fri, 9:00 AM - 6:00 PM IST"},
			{Title: "Head Office", Details: "Agricultural Innovation Hub, Bangalore, Karnataka, India", Description: "Visit us for partnerships and collaborations"},
		},
		SupportHours: []Hours{
			{Days: "Monday - Friday", Hours: "9:00 AM - 6:00 PM"},
			{Days: "Saturday", Hours: "10:00 AM - 4:00 PM"},
			{Days: "Sunday", Hours: "Closed"},
		},
		HoursTimezone: "All times are in Indian Standard Time (IST)",
		FAQ: []FAQ{
			{
				Question: "How accurate is the breed recognition?",
				Answer:   "Our AI model achieves 98% accuracy across 50+ Indian livestock breeds, continuously improving through farmer feedback.",
			},
			{
				Question: "Is the platform free to use?",
				Answer:   "Basic breed recognition is free. Premium features like detailed breeding recommendations require a subscription.",
			},
			{
				Question: "Do you support regional languages?",
				Answer:   "Currently available in English and Hindi. We're working on adding more regional languages based on user demand.",
			},
			{
				Question: "Can I get personalized breeding advice?",
				Answer:   "Yes! Our AI chatbot provides personalized advice based on your location, breed, and farming conditions.",
			},
		},
	}
}
