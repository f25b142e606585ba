package recognition

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"yield-ai/internal/platform/logger"
	"yield-ai/internal/platform/metrics"

	"github.com/google/uuid"
)

// DefaultMaxBytes es el límite de tamaño de imagen (10 MB).
const DefaultMaxBytes int64 = 10 * 1024 * 1024

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrTooLarge         = errors.New("file too large")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrPending          = errors.New("analysis pending")
	ErrCancelled        = errors.New("analysis cancelled")
	ErrUpstream         = errors.New("classifier failed")
)

type Service struct {
	repo       Repository
	classifier Classifier
	log        logger.Logger
	maxBytes   int64

	now   func() time.Time
	newID func() string

	base context.Context
	stop context.CancelFunc

	mu      sync.Mutex
	pending map[string]*run
}

// run es un análisis en curso.
type run struct {
	cancel context.CancelFunc
}

// NewService crea el servicio. maxBytes <= 0 usa DefaultMaxBytes.
func NewService(repo Repository, classifier Classifier, log logger.Logger, maxBytes int64) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	base, stop := context.WithCancel(context.Background())
	return &Service{
		repo:       repo,
		classifier: classifier,
		log:        log.With(map[string]any{"component": "recognition", "classifier": classifier.Name()}),
		maxBytes:   maxBytes,
		now:        time.Now,
		newID:      uuid.NewString,
		base:       base,
		stop:       stop,
		pending:    make(map[string]*run),
	}
}

func (s *Service) MaxBytes() int64 { return s.maxBytes }

type UploadInput struct {
	Filename string
	// Size es el tamaño declarado (multipart header). 0 si no se conoce.
	Size int64
	Body io.Reader
}

// Upload valida la imagen y arma la vista previa.
// Una imagen rechazada no se guarda ni genera vista previa.
func (s *Service) Upload(ctx context.Context, in UploadInput) (Upload, error) {
	if in.Body == nil {
		return Upload{}, ErrInvalidInput
	}
	if in.Size > s.maxBytes {
		return Upload{}, s.reject("too_large", ErrTooLarge)
	}

	// Leemos un byte de más para detectar archivos que mienten en el header.
	data, err := io.ReadAll(io.LimitReader(in.Body, s.maxBytes+1))
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return Upload{}, s.reject("too_large", ErrTooLarge)
	}
	if len(data) == 0 {
		return Upload{}, s.reject("empty", ErrInvalidInput)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return Upload{}, s.reject("not_image", ErrUnsupportedMedia)
	}

	u := Upload{
		ID:          s.newID(),
		Filename:    strings.TrimSpace(in.Filename),
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
		Preview:     "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		CreatedAt:   s.now(),
	}
	if err := s.repo.SaveUpload(ctx, u); err != nil {
		return Upload{}, err
	}

	s.log.Info("image uploaded", map[string]any{"upload_id": u.ID, "size": u.Size, "content_type": contentType})
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (Upload, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Upload{}, ErrInvalidInput
	}
	return s.repo.GetUpload(ctx, id)
}

// Latest devuelve el último análisis de la imagen, o ErrNotFound.
func (s *Service) Latest(ctx context.Context, uploadID string) (Analysis, error) {
	return s.repo.LatestAnalysis(ctx, strings.TrimSpace(uploadID))
}

// Delete descarta la imagen (vuelve al estado sin imagen) y cancela un análisis en curso.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	if r, ok := s.pending[id]; ok {
		r.cancel()
		delete(s.pending, id)
	}
	s.mu.Unlock()

	return s.repo.DeleteUpload(ctx, id)
}

// Analyze corre el Classifier sobre una imagen subida. Un solo análisis por imagen a la vez.
func (s *Service) Analyze(ctx context.Context, uploadID string) (Analysis, error) {
	uploadID = strings.TrimSpace(uploadID)
	if uploadID == "" {
		return Analysis{}, ErrInvalidInput
	}

	u, err := s.repo.GetUpload(ctx, uploadID)
	if err != nil {
		return Analysis{}, err
	}

	runCtx, done, err := s.acquire(ctx, uploadID)
	if err != nil {
		return Analysis{}, err
	}
	defer done()

	res, err := s.classifier.Classify(runCtx, Image{ContentType: u.ContentType, Data: u.Data})
	if err != nil {
		if runCtx.Err() != nil {
			s.log.Debug("analysis abandoned", map[string]any{"upload_id": uploadID})
			return Analysis{}, fmt.Errorf("%w: %v", ErrCancelled, runCtx.Err())
		}
		s.log.Error("classifier failed", map[string]any{"upload_id": uploadID, "error": err})
		return Analysis{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if runCtx.Err() != nil {
		return Analysis{}, ErrCancelled
	}

	a := Analysis{
		ID:         s.newID(),
		UploadID:   uploadID,
		Result:     res,
		Provider:   s.classifier.Name(),
		AnalyzedAt: s.now(),
	}
	if err := s.repo.SaveAnalysis(ctx, a); err != nil {
		return Analysis{}, err
	}

	metrics.RecognitionAnalyses.WithLabelValues(res.Animal).Inc()
	s.log.Info("breed identified", map[string]any{
		"upload_id":  uploadID,
		"breed":      res.Breed,
		"confidence": res.Confidence,
	})
	return a, nil
}

// Shutdown cancela los análisis en curso.
func (s *Service) Shutdown() {
	s.stop()
}

func (s *Service) acquire(ctx context.Context, uploadID string) (context.Context, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.pending[uploadID]; busy {
		return nil, nil, ErrPending
	}

	runCtx, cancel := context.WithCancel(ctx)
	stopAfter := context.AfterFunc(s.base, cancel)
	r := &run{cancel: cancel}
	s.pending[uploadID] = r

	done := func() {
		stopAfter()
		cancel()
		s.mu.Lock()
		if cur, ok := s.pending[uploadID]; ok && cur == r {
			delete(s.pending, uploadID)
		}
		s.mu.Unlock()
	}
	return runCtx, done, nil
}

func (s *Service) reject(reason string, err error) error {
	metrics.UploadsRejected.WithLabelValues(reason).Inc()
	s.log.Info("image rejected", map[string]any{"reason": reason})
	return err
}
