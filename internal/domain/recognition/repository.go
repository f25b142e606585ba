package recognition

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("upload not found")

type Repository interface {
	SaveUpload(ctx context.Context, u Upload) error
	GetUpload(ctx context.Context, id string) (Upload, error)
	// DeleteUpload borra la imagen y sus análisis.
	DeleteUpload(ctx context.Context, id string) error

	SaveAnalysis(ctx context.Context, a Analysis) error
	// LatestAnalysis devuelve ErrNotFound si la imagen todavía no se analizó.
	LatestAnalysis(ctx context.Context, uploadID string) (Analysis, error)
}

// Classifier identifica la raza de una imagen.
// Debe respetar ctx: si se cancela, devuelve ctx.Err() sin resultado.
type Classifier interface {
	Name() string
	Classify(ctx context.Context, img Image) (Result, error)
}
