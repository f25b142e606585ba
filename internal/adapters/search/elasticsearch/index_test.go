package elasticsearch

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"yield-ai/internal/domain/breeds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeES responde como un cluster mínimo. El cliente v8 exige el header X-Elastic-Product.
type fakeES struct {
	mu       sync.Mutex
	requests []string
	bulk     []string
	search   map[string]any
	status   int
	count    int
	missing  bool
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
		return
	}

	switch {
	case strings.HasSuffix(r.URL.Path, "/_count"):
		if f.missing {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"index_not_found_exception"},"status":404}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]int{"count": f.count})
	case strings.HasSuffix(r.URL.Path, "/_search"):
		_ = json.NewDecoder(r.Body).Decode(&f.search)
		_, _ = w.Write([]byte(`{"hits":{"total":{"value":1},"hits":[{"_source":{
			"id":"7","position":6,"name":"Murrah","animal":"buffalo","origin":"Haryana, India",
			"characteristics":["Jet black color"],"milk_yield":"1,800-2,500 liters per lactation",
			"climate":"Subtropical","care":["Wallowing"],"image":"/placeholder.svg"}}]}}`))
	case strings.HasSuffix(r.URL.Path, "/_bulk"):
		sc := bufio.NewScanner(r.Body)
		for sc.Scan() {
			f.bulk = append(f.bulk, sc.Text())
		}
		_, _ = w.Write([]byte(`{"errors":false,"items":[]}`))
	default:
		_, _ = w.Write([]byte(`{"acknowledged":true}`))
	}
}

func newTestIndex(t *testing.T, f *fakeES) *BreedIndex {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	ix, err := New(Options{Addresses: []string{srv.URL}, Index: "breeds"})
	require.NoError(t, err)
	return ix
}

func TestSearch_DecodesHits(t *testing.T) {
	f := &fakeES{}
	ix := newTestIndex(t, f)

	got, err := ix.Search(context.Background(), "Murrah", "buffalo")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Murrah", got[0].Name)
	assert.Equal(t, breeds.AnimalBuffalo, got[0].Animal)
	assert.Equal(t, []string{"Wallowing"}, got[0].Care)

	assert.Contains(t, f.requests, "POST /breeds/_search")
	q := f.search["query"].(map[string]any)["bool"].(map[string]any)
	assert.Len(t, q["filter"], 1)
	assert.Len(t, q["should"], 2)
}

func TestSearch_BackendError(t *testing.T) {
	ix := newTestIndex(t, &fakeES{status: http.StatusInternalServerError})

	_, err := ix.Search(context.Background(), "", "all")
	assert.Error(t, err)
}

func TestBuildQuery(t *testing.T) {
	all := buildQuery("", "all")
	assert.Equal(t, map[string]any{"match_all": map[string]any{}}, all["query"])
	assert.Equal(t, maxResults, all["size"])

	q := buildQuery("Gi*r", " Cattle ")
	b := q["query"].(map[string]any)["bool"].(map[string]any)

	filter := b["filter"].([]any)[0].(map[string]any)["term"].(map[string]any)["animal"].(map[string]any)
	assert.Equal(t, "cattle", filter["value"])

	should := b["should"].([]any)
	name := should[0].(map[string]any)["wildcard"].(map[string]any)["name"].(map[string]any)
	assert.Equal(t, `*gi\*r*`, name["value"])
	assert.Equal(t, true, name["case_insensitive"])
	assert.Equal(t, 1, b["minimum_should_match"])
}

func TestReindex_SendsEveryBreedInOrder(t *testing.T) {
	f := &fakeES{}
	ix := newTestIndex(t, f)

	seed := breeds.Seed()
	require.NoError(t, ix.Reindex(context.Background(), seed))

	assert.Equal(t, "DELETE /breeds", f.requests[0])
	assert.Equal(t, "PUT /breeds", f.requests[1])
	require.Len(t, f.bulk, 2*len(seed))

	var doc breedDoc
	require.NoError(t, json.Unmarshal([]byte(f.bulk[1]), &doc))
	assert.Equal(t, seed[0].Name, doc.Name)
	assert.Equal(t, 0, doc.Position)

	require.NoError(t, json.Unmarshal([]byte(f.bulk[len(f.bulk)-1]), &doc))
	assert.Equal(t, len(seed)-1, doc.Position)
}

func TestCount(t *testing.T) {
	ix := newTestIndex(t, &fakeES{count: 12})
	n, err := ix.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	ix = newTestIndex(t, &fakeES{missing: true})
	n, err = ix.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	ix = newTestIndex(t, &fakeES{status: http.StatusInternalServerError})
	_, err = ix.Count(context.Background())
	assert.Error(t, err)
}
