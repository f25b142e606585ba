package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"yield-ai/internal/domain/breeds"

	elastic "github.com/elastic/go-elasticsearch/v8"
)

// maxResults alcanza para todo el catálogo; no hay paginación.
const maxResults = 100

type Options struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
}

// BreedIndex implementa breeds.Index sobre Elasticsearch.
// Misma semántica que breeds.Filter: contiene (sin mayúsculas) en nombre o categoría,
// categoría exacta si el selector no es "all", orden del catálogo.
type BreedIndex struct {
	client *elastic.Client
	index  string
}

func New(opts Options) (*BreedIndex, error) {
	cfg := elastic.Config{Addresses: opts.Addresses}
	if opts.Username != "" {
		cfg.Username = opts.Username
		cfg.Password = opts.Password
	}

	client, err := elastic.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return NewWithClient(client, opts.Index), nil
}

func NewWithClient(client *elastic.Client, index string) *BreedIndex {
	if strings.TrimSpace(index) == "" {
		index = "breeds"
	}
	return &BreedIndex{client: client, index: index}
}

type breedDoc struct {
	ID              string   `json:"id"`
	Position        int      `json:"position"`
	Name            string   `json:"name"`
	Animal          string   `json:"animal"`
	Origin          string   `json:"origin"`
	Characteristics []string `json:"characteristics"`
	MilkYield       string   `json:"milk_yield"`
	Climate         string   `json:"climate"`
	Care            []string `json:"care"`
	Image           string   `json:"image"`
}

const indexMapping = `{
  "mappings": {
    "properties": {
      "id":       {"type": "keyword"},
      "position": {"type": "integer"},
      "name":     {"type": "keyword"},
      "animal":   {"type": "keyword"},
      "origin":   {"type": "text"},
      "characteristics": {"type": "text"},
      "milk_yield": {"type": "keyword", "index": false},
      "climate":  {"type": "text"},
      "care":     {"type": "text"},
      "image":    {"type": "keyword", "index": false}
    }
  }
}`

// Ping verifica la conexión con el cluster.
func (ix *BreedIndex) Ping(ctx context.Context) error {
	res, err := ix.client.Ping(ix.client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping error: %s", res.Status())
	}
	return nil
}

// Count devuelve cuántos documentos tiene el índice. Un índice inexistente cuenta 0.
func (ix *BreedIndex) Count(ctx context.Context) (int, error) {
	res, err := ix.client.Count(
		ix.client.Count.WithContext(ctx),
		ix.client.Count.WithIndex(ix.index),
	)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return 0, nil
	}
	if res.IsError() {
		return 0, fmt.Errorf("count failed: %s", res.Status())
	}

	var out struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode count response: %w", err)
	}
	return out.Count, nil
}

// Reindex borra el índice y lo vuelve a crear con los registros dados, en ese orden.
func (ix *BreedIndex) Reindex(ctx context.Context, items []breeds.Breed) error {
	del, err := ix.client.Indices.Delete(
		[]string{ix.index},
		ix.client.Indices.Delete.WithContext(ctx),
		ix.client.Indices.Delete.WithIgnoreUnavailable(true),
	)
	if err != nil {
		return fmt.Errorf("delete index: %w", err)
	}
	del.Body.Close()

	create, err := ix.client.Indices.Create(
		ix.index,
		ix.client.Indices.Create.WithContext(ctx),
		ix.client.Indices.Create.WithBody(strings.NewReader(indexMapping)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer create.Body.Close()
	if create.IsError() {
		return fmt.Errorf("create index: %s", create.String())
	}

	if len(items) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i, b := range items {
		meta := map[string]any{"index": map[string]any{"_index": ix.index, "_id": b.ID}}
		if err := enc.Encode(meta); err != nil {
			return err
		}
		if err := enc.Encode(toDoc(i, b)); err != nil {
			return err
		}
	}

	res, err := ix.client.Bulk(
		&buf,
		ix.client.Bulk.WithContext(ctx),
		ix.client.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("bulk index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("bulk index: %s", res.String())
	}

	var out struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode bulk response: %w", err)
	}
	if out.Errors {
		return fmt.Errorf("bulk index: some documents failed")
	}
	return nil
}

func (ix *BreedIndex) Search(ctx context.Context, query, animal string) ([]breeds.Breed, error) {
	body, err := json.Marshal(buildQuery(query, animal))
	if err != nil {
		return nil, err
	}

	res, err := ix.client.Search(
		ix.client.Search.WithContext(ctx),
		ix.client.Search.WithIndex(ix.index),
		ix.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("search query failed: %s %s", res.Status(), strings.TrimSpace(string(raw)))
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source breedDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]breeds.Breed, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		out = append(out, fromDoc(h.Source))
	}
	return out, nil
}

// buildQuery arma el bool query. El texto no se recorta: igual que el filtro en memoria.
func buildQuery(query, animal string) map[string]any {
	var (
		filter []any
		should []any
	)

	if sel := strings.ToLower(strings.TrimSpace(animal)); sel != "" && sel != breeds.AllAnimals {
		filter = append(filter, map[string]any{
			"term": map[string]any{"animal": map[string]any{"value": sel, "case_insensitive": true}},
		})
	}

	if query != "" {
		pattern := "*" + escapeWildcard(strings.ToLower(query)) + "*"
		for _, field := range []string{"name", "animal"} {
			should = append(should, map[string]any{
				"wildcard": map[string]any{field: map[string]any{"value": pattern, "case_insensitive": true}},
			})
		}
	}

	boolQuery := map[string]any{}
	if len(filter) > 0 {
		boolQuery["filter"] = filter
	}
	if len(should) > 0 {
		boolQuery["should"] = should
		boolQuery["minimum_should_match"] = 1
	}

	q := map[string]any{"match_all": map[string]any{}}
	if len(boolQuery) > 0 {
		q = map[string]any{"bool": boolQuery}
	}

	return map[string]any{
		"size":  maxResults,
		"sort":  []any{map[string]any{"position": "asc"}},
		"query": q,
	}
}

func escapeWildcard(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)
	return r.Replace(s)
}

func toDoc(pos int, b breeds.Breed) breedDoc {
	return breedDoc{
		ID:              b.ID,
		Position:        pos,
		Name:            b.Name,
		Animal:          string(b.Animal),
		Origin:          b.Origin,
		Characteristics: b.Characteristics,
		MilkYield:       b.MilkYield,
		Climate:         b.Climate,
		Care:            b.Care,
		Image:           b.Image,
	}
}

func fromDoc(d breedDoc) breeds.Breed {
	return breeds.Breed{
		ID:              d.ID,
		Name:            d.Name,
		Animal:          breeds.Animal(d.Animal),
		Origin:          d.Origin,
		Characteristics: d.Characteristics,
		MilkYield:       d.MilkYield,
		Climate:         d.Climate,
		Care:            d.Care,
		Image:           d.Image,
	}
}
