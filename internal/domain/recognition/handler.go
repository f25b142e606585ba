package recognition

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// multipartOverhead cubre boundaries y headers del form por encima del archivo.
const multipartOverhead = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/recognition/uploads", func(ur chi.Router) {
		ur.Post("/", uploadImageHandler(svc))
		ur.Get("/{uploadID}", getUploadHandler(svc))
		ur.Delete("/{uploadID}", deleteUploadHandler(svc))

		ur.Post("/{uploadID}/analyses", analyzeHandler(svc))
	})
}

type uploadResponse struct {
	ID          string            `json:"id"`
	Filename    string            `json:"filename"`
	ContentType string            `json:"content_type"`
	Size        int64             `json:"size"`
	Preview     string            `json:"preview"`
	CreatedAt   time.Time         `json:"created_at"`
	Analysis    *analysisResponse `json:"analysis,omitempty"`
}

type featuresResponse struct {
	Origin       string `json:"origin"`
	Size         string `json:"size"`
	MilkYield    string `json:"milk_yield"`
	Adaptability string `json:"adaptability"`
	Lifespan     string `json:"lifespan"`
}

type recommendationResponse struct {
	Breed                 string   `json:"recommended_breed"`
	Reason                string   `json:"reason"`
	Benefits              []string `json:"benefits"`
	ExpectedYieldIncrease string   `json:"expected_yield_increase"`
}

type resultResponse struct {
	Breed           string                   `json:"breed"`
	Confidence      float64                  `json:"confidence"`
	Animal          string                   `json:"animal"`
	Features        featuresResponse         `json:"general_features"`
	Recommendations []recommendationResponse `json:"mating_recommendations"`
}

type noticeResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type analysisResponse struct {
	ID         string         `json:"id"`
	UploadID   string         `json:"upload_id"`
	Provider   string         `json:"provider"`
	AnalyzedAt time.Time      `json:"analyzed_at"`
	Result     resultResponse `json:"result"`
	Notice     noticeResponse `json:"notice"`
}

// errorResponse es el cuerpo de los rechazos que la UI muestra como toast.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// uploadImageHandler godoc
// @Summary Subir una imagen
// @Description Acepta una imagen (campo multipart "image") de hasta 10MB y devuelve la vista previa como data URL. Si excede el límite no se guarda nada.
// @Tags recognition
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Imagen del animal"
// @Success 201 {object} uploadResponse
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Failure 415 {object} errorResponse
// @Router /recognition/uploads [post]
func uploadImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, svc.MaxBytes()+multipartOverhead)

		file, header, err := r.FormFile("image")
		if err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				writeTooLarge(w, svc)
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "invalid upload",
				Message: "Send the image in the multipart field \"image\"",
			})
			return
		}
		defer file.Close()

		u, err := svc.Upload(r.Context(), UploadInput{
			Filename: header.Filename,
			Size:     header.Size,
			Body:     file,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrTooLarge):
				writeTooLarge(w, svc)
			case errors.Is(err, ErrUnsupportedMedia):
				writeJSON(w, http.StatusUnsupportedMediaType, errorResponse{
					Error:   "unsupported media type",
					Message: "Supports: JPG, PNG, WEBP",
				})
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, errorResponse{
					Error:   "invalid upload",
					Message: "The uploaded file is empty",
				})
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toUploadResponse(u, nil))
	}
}

// getUploadHandler godoc
// @Summary Ver una imagen subida
// @Description Devuelve la imagen con su vista previa y el último análisis, si existe.
// @Tags recognition
// @Produce json
// @Param uploadID path string true "ID de la imagen"
// @Success 200 {object} uploadResponse
// @Failure 404 {string} string "upload not found"
// @Router /recognition/uploads/{uploadID} [get]
func getUploadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Get(r.Context(), chi.URLParam(r, "uploadID"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		var last *Analysis
		if a, err := svc.Latest(r.Context(), u.ID); err == nil {
			last = &a
		} else if !errors.Is(err, ErrNotFound) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toUploadResponse(u, last))
	}
}

// deleteUploadHandler godoc
// @Summary Descartar una imagen
// @Tags recognition
// @Param uploadID path string true "ID de la imagen"
// @Success 204
// @Failure 404 {string} string "upload not found"
// @Router /recognition/uploads/{uploadID} [delete]
func deleteUploadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "uploadID")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// analyzeHandler godoc
// @Summary Identificar la raza
// @Description Analiza la imagen subida y devuelve la raza, sus rasgos y recomendaciones de cruza.
// @Tags recognition
// @Produce json
// @Param uploadID path string true "ID de la imagen"
// @Success 201 {object} analysisResponse
// @Failure 404 {string} string "upload not found"
// @Failure 409 {string} string "analysis pending"
// @Failure 502 {string} string "upstream error"
// @Router /recognition/uploads/{uploadID}/analyses [post]
func analyzeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Analyze(r.Context(), chi.URLParam(r, "uploadID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAnalysisResponse(a))
	}
}

func writeTooLarge(w http.ResponseWriter, svc *Service) {
	writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
		Error:   "file too large",
		Message: fmt.Sprintf("Please upload an image smaller than %dMB", svc.MaxBytes()/(1024*1024)),
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
		http.Error(w, "upload not found", http.StatusNotFound)
	case errors.Is(err, ErrPending):
		http.Error(w, "analysis pending", http.StatusConflict)
	case errors.Is(err, ErrCancelled):
		if r.Context().Err() != nil {
			return
		}
		http.Error(w, "analysis cancelled", http.StatusGone)
	case errors.Is(err, ErrUpstream):
		http.Error(w, "upstream error", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toUploadResponse(u Upload, last *Analysis) uploadResponse {
	out := uploadResponse{
		ID:          u.ID,
		Filename:    u.Filename,
		ContentType: u.ContentType,
		Size:        u.Size,
		Preview:     u.Preview,
		CreatedAt:   u.CreatedAt,
	}
	if last != nil {
		a := toAnalysisResponse(*last)
		out.Analysis = &a
	}
	return out
}

func toAnalysisResponse(a Analysis) analysisResponse {
	recs := make([]recommendationResponse, 0, len(a.Result.Recommendations))
	for _, rec := range a.Result.Recommendations {
		benefits := rec.Benefits
		if benefits == nil {
			benefits = []string{}
		}
		recs = append(recs, recommendationResponse{
			Breed:                 rec.Breed,
			Reason:                rec.Reason,
			Benefits:              benefits,
			ExpectedYieldIncrease: rec.ExpectedYieldIncrease,
		})
	}

	return analysisResponse{
		ID:         a.ID,
		UploadID:   a.UploadID,
		Provider:   a.Provider,
		AnalyzedAt: a.AnalyzedAt,
		Result: resultResponse{
			Breed:      a.Result.Breed,
			Confidence: a.Result.Confidence,
			Animal:     a.Result.Animal,
			Features: featuresResponse{
				Origin:       a.Result.Features.Origin,
				Size:         a.Result.Features.Size,
				MilkYield:    a.Result.Features.MilkYield,
				Adaptability: a.Result.Features.Adaptability,
				Lifespan:     a.Result.Features.Lifespan,
			},
			Recommendations: recs,
		},
		Notice: noticeResponse{
			Title:       "Analysis Complete",
			Description: a.Notice(),
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
