package canned

import (
	"context"
	"math/rand"
	"time"

	"yield-ai/internal/domain/recognition"
	"yield-ai/internal/platform/delay"
)

// DefaultRecognitionDelay es la espera simulada del análisis.
const DefaultRecognitionDelay = 2000 * time.Millisecond

// Results devuelve la tabla de resultados posibles, uno por categoría de animal.
func Results() []recognition.Result {
	return []recognition.Result{
		{
			Breed:      "Gir",
			Confidence: 94.2,
			Animal:     "cattle",
			Features: recognition.Features{
				Origin:       "Gujarat, India",
				Size:         "Medium to large (350-400 kg)",
				MilkYield:    "1,200-1,800 liters per lactation",
				Adaptability: "Excellent heat tolerance, disease resistant",
				Lifespan:     "12-15 years",
			},
			Recommendations: []recognition.Recommendation{
				{
					Breed:                 "Holstein Friesian",
					Reason:                "Crossbreeding Gir with Holstein Friesian produces high milk yield offspring with better disease resistance",
					Benefits:              []string{"Increased milk production (15-20%)", "Better heat tolerance", "Improved disease resistance", "Hybrid vigor"},
					ExpectedYieldIncrease: "25-30%",
				},
				{
					Breed:                 "Jersey",
					Reason:                "Gir x Jersey cross combines high butterfat content with good milk yield and adaptability",
					Benefits:              []string{"Higher butterfat content (4.5-5%)", "Better feed conversion", "Good calving ease", "Moderate milk yield"},
					ExpectedYieldIncrease: "20-25%",
				},
				{
					Breed:                 "Sahiwal",
					Reason:                "Both are indigenous breeds, creating hardy offspring with good milk production and disease resistance",
					Benefits:              []string{"Pure indigenous genetics", "Natural disease immunity", "Heat stress tolerance", "Lower maintenance"},
					ExpectedYieldIncrease: "15-20%",
				},
			},
		},
		{
			Breed:      "Murrah",
			Confidence: 91.8,
			Animal:     "buffalo",
			Features: recognition.Features{
				Origin:       "Haryana, India",
				Size:         "Large (450-550 kg)",
				MilkYield:    "1,800-2,500 liters per lactation",
				Adaptability: "Subtropical climate, high humidity tolerance",
				Lifespan:     "18-20 years",
			},
			Recommendations: []recognition.Recommendation{
				{
					Breed:                 "Nili-Ravi",
					Reason:                "Cross between Murrah and Nili-Ravi creates superior milk production with excellent butterfat content",
					Benefits:              []string{"Higher butterfat content (7-8%)", "Better milk yield", "Strong maternal instincts", "Good adaptability"},
					ExpectedYieldIncrease: "30-35%",
				},
				{
					Breed:                 "Mehsana",
					Reason:                "Combines Murrah's high yield with Mehsana's longevity and disease resistance",
					Benefits:              []string{"Extended lactation period", "Disease resistance", "Good conception rate", "Hardy offspring"},
					ExpectedYieldIncrease: "25-30%",
				},
				{
					Breed:                 "Surti",
					Reason:                "Creates balanced offspring with good milk quality and moderate yield suitable for small farmers",
					Benefits:              []string{"Compact size", "Good milk quality", "Easy management", "Lower feed requirements"},
					ExpectedYieldIncrease: "20-25%",
				},
			},
		},
	}
}

// Classifier elige un resultado de la tabla al azar. Ignora los bytes de la imagen.
type Classifier struct {
	delay   time.Duration
	intn    func(n int) int
	results []recognition.Result
}

func NewClassifier(d time.Duration) *Classifier {
	return &Classifier{delay: d, intn: rand.Intn, results: Results()}
}

func (c *Classifier) Name() string { return "canned" }

func (c *Classifier) Classify(ctx context.Context, _ recognition.Image) (recognition.Result, error) {
	if err := delay.Wait(ctx, c.delay); err != nil {
		return recognition.Result{}, err
	}
	r := c.results[c.intn(len(c.results))]
	r.Recommendations = append([]recognition.Recommendation(nil), r.Recommendations...)
	return r, nil
}
