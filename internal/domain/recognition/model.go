package recognition

import (
	"strconv"
	"time"
)

// Features son los rasgos generales de la raza identificada.
type Features struct {
	Origin       string
	Size         string
	MilkYield    string
	Adaptability string
	Lifespan     string
}

// Recommendation es una sugerencia de cruza.
type Recommendation struct {
	Breed                 string
	Reason                string
	Benefits              []string
	ExpectedYieldIncrease string
}

// Result es lo que devuelve un Classifier. Confidence va en porcentaje (0-100).
type Result struct {
	Breed           string
	Confidence      float64
	Animal          string
	Features        Features
	Recommendations []Recommendation
}

// Image es lo que recibe el Classifier: los bytes subidos y su tipo sniffeado.
type Image struct {
	ContentType string
	Data        []byte
}

// Upload es una imagen aceptada. Preview es un data URL listo para un <img src>.
type Upload struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
	Preview     string
	CreatedAt   time.Time
}

type Analysis struct {
	ID         string
	UploadID   string
	Result     Result
	Provider   string
	AnalyzedAt time.Time
}

// Notice es el aviso que la UI muestra al terminar el análisis.
func (a Analysis) Notice() string {
	return "Breed identified with " + strconv.FormatFloat(a.Result.Confidence, 'f', -1, 64) + "% confidence"
}
