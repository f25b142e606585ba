package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate deja la config en defaults: sin Postgres, Redis ni Elasticsearch.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DATABASE_DSN", "DB_DSN", "REDIS_ADDRESS", "ELASTICSEARCH_ADDRESSES", "INFERENCE_MODE", "NOTIFY_MODE"} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBreeds_FiltersEmbeddedCatalog(t *testing.T) {
	isolate(t)

	out, err := execute(t, "breeds", "--q", "murrah")
	require.NoError(t, err)
	assert.Contains(t, out, "Murrah")
	assert.NotContains(t, out, "Gir")

	out, err = execute(t, "breeds", "--animal", "buffalo", "--q", "gir")
	require.NoError(t, err)
	assert.Contains(t, out, "No breeds found")
}

func TestBreeders_FiltersByLocation(t *testing.T) {
	isolate(t)

	out, err := execute(t, "breeders", "--location", "haryana")
	require.NoError(t, err)
	assert.Contains(t, out, "Krishna Buffalo Ranch")
	assert.NotContains(t, out, "Ramesh Dairy Farm")
}

func TestDatabaseCommands_RequireDSN(t *testing.T) {
	isolate(t)

	for _, name := range []string{"migrate", "seed", "contacts"} {
		_, err := execute(t, name)
		assert.ErrorIs(t, err, errNoDatabase, name)
	}

	_, err := execute(t, "reindex")
	assert.ErrorContains(t, err, "elasticsearch.addresses")
}
