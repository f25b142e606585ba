package remote

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"yield-ai/internal/domain/recognition"
	"yield-ai/internal/platform/httpclient"
)

const recognizePath = "/v1/recognize"

var ErrEmptyResult = errors.New("remote: empty recognition result")

type recognizeRequest struct {
	ContentType string `json:"content_type"`
	ImageBase64 string `json:"image_base64"`
}

type recommendationWire struct {
	RecommendedBreed      string   `json:"recommended_breed"`
	Reason                string   `json:"reason"`
	Benefits              []string `json:"benefits"`
	ExpectedYieldIncrease string   `json:"expected_yield_increase"`
}

type recognizeResponse struct {
	Breed           string  `json:"breed"`
	Confidence      float64 `json:"confidence"`
	Animal          string  `json:"animal"`
	GeneralFeatures struct {
		Origin       string `json:"origin"`
		Size         string `json:"size"`
		MilkYield    string `json:"milk_yield"`
		Adaptability string `json:"adaptability"`
		Lifespan     string `json:"lifespan"`
	} `json:"general_features"`
	MatingRecommendations []recommendationWire `json:"mating_recommendations"`
}

// Classifier manda la imagen a un backend de inferencia HTTP.
type Classifier struct {
	client *httpclient.Client
}

func NewClassifier(client *httpclient.Client) *Classifier {
	return &Classifier{client: client}
}

func (c *Classifier) Name() string { return "remote" }

func (c *Classifier) Classify(ctx context.Context, img recognition.Image) (recognition.Result, error) {
	req := recognizeRequest{
		ContentType: img.ContentType,
		ImageBase64: base64.StdEncoding.EncodeToString(img.Data),
	}

	var out recognizeResponse
	if err := c.client.PostJSON(ctx, recognizePath, req, &out); err != nil {
		if ctx.Err() != nil {
			return recognition.Result{}, ctx.Err()
		}
		return recognition.Result{}, upstreamError("remote recognize", err)
	}
	if strings.TrimSpace(out.Breed) == "" {
		return recognition.Result{}, ErrEmptyResult
	}

	res := recognition.Result{
		Breed:      out.Breed,
		Confidence: out.Confidence,
		Animal:     strings.ToLower(strings.TrimSpace(out.Animal)),
		Features: recognition.Features{
			Origin:       out.GeneralFeatures.Origin,
			Size:         out.GeneralFeatures.Size,
			MilkYield:    out.GeneralFeatures.MilkYield,
			Adaptability: out.GeneralFeatures.Adaptability,
			Lifespan:     out.GeneralFeatures.Lifespan,
		},
		Recommendations: make([]recognition.Recommendation, 0, len(out.MatingRecommendations)),
	}
	for _, m := range out.MatingRecommendations {
		res.Recommendations = append(res.Recommendations, recognition.Recommendation{
			Breed:                 m.RecommendedBreed,
			Reason:                m.Reason,
			Benefits:              m.Benefits,
			ExpectedYieldIncrease: m.ExpectedYieldIncrease,
		})
	}
	return res, nil
}
