package breeds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(items []Breed) []string {
	out := make([]string, 0, len(items))
	for _, b := range items {
		out = append(out, b.Name)
	}
	return out
}

func TestFilter_EmptyQueryAll_ReturnsEverythingInOrder(t *testing.T) {
	all := Seed()
	got := Filter(all, "", AllAnimals)
	require.Equal(t, all, got)
}

func TestFilter_EmptySelectorBehavesLikeAll(t *testing.T) {
	all := Seed()
	assert.Equal(t, Filter(all, "", AllAnimals), Filter(all, "", ""))
}

func TestFilter_Murrah(t *testing.T) {
	all := Seed()

	got := Filter(all, "Murrah", "buffalo")
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].ID)

	assert.Empty(t, Filter(all, "Murrah", "cattle"))
}

func TestFilter_CaseInsensitive(t *testing.T) {
	all := Seed()
	assert.Equal(t, []string{"Murrah"}, names(Filter(all, "mURRah", "BUFFALO")))
	assert.Equal(t, []string{"Gir"}, names(Filter(all, "GIR", AllAnimals)))
}

func TestFilter_QueryMatchesCategory(t *testing.T) {
	all := Seed()
	got := Filter(all, "buff", AllAnimals)
	assert.Equal(t, []string{"Murrah", "Nili-Ravi", "Mehsana", "Surti", "Jaffarabadi", "Bhadawari"}, names(got))
}

func TestFilter_CategoryOnly(t *testing.T) {
	got := Filter(Seed(), "", "cattle")
	assert.Equal(t, []string{"Gir", "Sahiwal", "Red Sindhi", "Tharparkar", "Hariana", "Kankrej"}, names(got))
}

func TestFilter_NoMatch(t *testing.T) {
	got := Filter(Seed(), "holstein", AllAnimals)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_Property_ResultsSatisfyPredicate(t *testing.T) {
	all := Seed()
	queries := []string{"", "a", "ar", "R", "sindhi", "cat", "zzz", " ", "-"}
	selectors := []string{AllAnimals, "cattle", "buffalo", "goat"}

	for _, q := range queries {
		for _, c := range selectors {
			got := Filter(all, q, c)

			for _, b := range got {
				lq := strings.ToLower(q)
				matches := strings.Contains(strings.ToLower(b.Name), lq) ||
					strings.Contains(strings.ToLower(string(b.Animal)), lq)
				assert.Truef(t, matches, "q=%q c=%q returned %s", q, c, b.Name)
				if c != AllAnimals {
					assert.Equalf(t, c, string(b.Animal), "q=%q c=%q returned %s", q, c, b.Name)
				}
			}

			// subsecuencia del original: nunca reordena
			idx := 0
			for _, b := range got {
				for idx < len(all) && all[idx].ID != b.ID {
					idx++
				}
				require.Lessf(t, idx, len(all), "q=%q c=%q out of order", q, c)
				idx++
			}
		}
	}
}

func TestSeed_ReturnsIndependentCopy(t *testing.T) {
	a := Seed()
	a[0].Name = "changed"
	a[0].Care[0] = "changed"

	b := Seed()
	assert.Equal(t, "Gir", b[0].Name)
	assert.Equal(t, "Regular vaccination", b[0].Care[0])
	assert.Len(t, b, 12)
}
