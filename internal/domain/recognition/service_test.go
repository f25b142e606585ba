package recognition

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type testRepo struct {
	mu       sync.Mutex
	uploads  map[string]Upload
	analyses map[string][]Analysis
}

func newTestRepo() *testRepo {
	return &testRepo{uploads: map[string]Upload{}, analyses: map[string][]Analysis{}}
}

func (r *testRepo) SaveUpload(_ context.Context, u Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads[u.ID] = u
	return nil
}

func (r *testRepo) GetUpload(_ context.Context, id string) (Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.uploads[id]
	if !ok {
		return Upload{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) DeleteUpload(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.uploads[id]; !ok {
		return ErrNotFound
	}
	delete(r.uploads, id)
	delete(r.analyses, id)
	return nil
}

func (r *testRepo) SaveAnalysis(_ context.Context, a Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.uploads[a.UploadID]; !ok {
		return ErrNotFound
	}
	r.analyses[a.UploadID] = append(r.analyses[a.UploadID], a)
	return nil
}

func (r *testRepo) LatestAnalysis(_ context.Context, id string) (Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.analyses[id]
	if len(list) == 0 {
		return Analysis{}, ErrNotFound
	}
	return list[len(list)-1], nil
}

type stubClassifier struct {
	result  Result
	err     error
	gate    chan struct{}
	started chan struct{}
	got     Image
}

func (c *stubClassifier) Name() string { return "stub" }

func (c *stubClassifier) Classify(ctx context.Context, img Image) (Result, error) {
	c.got = img
	if c.started != nil {
		close(c.started)
	}
	if c.gate != nil {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-c.gate:
		}
	}
	if c.err != nil {
		return Result{}, c.err
	}
	return c.result, nil
}

var murrah = Result{Breed: "Murrah", Confidence: 91.8, Animal: "buffalo"}

func newTestService(c Classifier, maxBytes int64) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, c, nil, maxBytes)
	svc.now = func() time.Time { return time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func pngOfSize(n int) []byte {
	b := make([]byte, n)
	copy(b, pngHeader)
	return b
}

func TestUpload_WithinLimitProducesPreview(t *testing.T) {
	svc, repo := newTestService(&stubClassifier{result: murrah}, 64)
	defer svc.Shutdown()

	u, err := svc.Upload(context.Background(), UploadInput{Filename: "cow.png", Size: 64, Body: bytes.NewReader(pngOfSize(64))})
	require.NoError(t, err)
	assert.Equal(t, "image/png", u.ContentType)
	assert.Equal(t, int64(64), u.Size)
	assert.True(t, strings.HasPrefix(u.Preview, "data:image/png;base64,"))

	_, err = repo.GetUpload(context.Background(), u.ID)
	require.NoError(t, err)
}

func TestUpload_OverLimitIsRejectedWithoutPreview(t *testing.T) {
	svc, repo := newTestService(&stubClassifier{result: murrah}, 64)
	defer svc.Shutdown()

	// tamaño declarado
	_, err := svc.Upload(context.Background(), UploadInput{Size: 65, Body: bytes.NewReader(pngOfSize(65))})
	assert.ErrorIs(t, err, ErrTooLarge)

	// tamaño real, sin header
	_, err = svc.Upload(context.Background(), UploadInput{Body: bytes.NewReader(pngOfSize(65))})
	assert.ErrorIs(t, err, ErrTooLarge)

	assert.Empty(t, repo.uploads)
}

func TestUpload_DefaultLimitIsTenMegabytes(t *testing.T) {
	svc, _ := newTestService(&stubClassifier{result: murrah}, 0)
	defer svc.Shutdown()
	assert.Equal(t, int64(10*1024*1024), svc.MaxBytes())
}

func TestUpload_NotAnImage(t *testing.T) {
	svc, _ := newTestService(&stubClassifier{result: murrah}, 64)
	defer svc.Shutdown()

	_, err := svc.Upload(context.Background(), UploadInput{Body: strings.NewReader("just some text")})
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	_, err = svc.Upload(context.Background(), UploadInput{Body: bytes.NewReader(nil)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyze_ReturnsClassifierResult(t *testing.T) {
	c := &stubClassifier{result: murrah}
	svc, _ := newTestService(c, 64)
	defer svc.Shutdown()
	ctx := context.Background()

	u, err := svc.Upload(ctx, UploadInput{Body: bytes.NewReader(pngOfSize(32))})
	require.NoError(t, err)

	a, err := svc.Analyze(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Murrah", a.Result.Breed)
	assert.Equal(t, "stub", a.Provider)
	assert.Equal(t, "Breed identified with 91.8% confidence", a.Notice())
	assert.Equal(t, "image/png", c.got.ContentType)

	last, err := svc.Latest(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, last.ID)
}

func TestAnalyze_UnknownUpload(t *testing.T) {
	svc, _ := newTestService(&stubClassifier{result: murrah}, 64)
	defer svc.Shutdown()

	_, err := svc.Analyze(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyze_PendingRejectsSecondRequest(t *testing.T) {
	c := &stubClassifier{result: murrah, gate: make(chan struct{}), started: make(chan struct{})}
	svc, _ := newTestService(c, 64)
	defer svc.Shutdown()
	ctx := context.Background()

	u, err := svc.Upload(ctx, UploadInput{Body: bytes.NewReader(pngOfSize(32))})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Analyze(ctx, u.ID)
		done <- err
	}()
	<-c.started

	_, err = svc.Analyze(ctx, u.ID)
	assert.ErrorIs(t, err, ErrPending)

	close(c.gate)
	require.NoError(t, <-done)
}

func TestDelete_CancelsRunningAnalysis(t *testing.T) {
	c := &stubClassifier{result: murrah, gate: make(chan struct{}), started: make(chan struct{})}
	svc, _ := newTestService(c, 64)
	defer svc.Shutdown()
	ctx := context.Background()

	u, err := svc.Upload(ctx, UploadInput{Body: bytes.NewReader(pngOfSize(32))})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Analyze(ctx, u.ID)
		done <- err
	}()
	<-c.started

	require.NoError(t, svc.Delete(ctx, u.ID))
	assert.ErrorIs(t, <-done, ErrCancelled)

	_, err = svc.Get(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyze_ClassifierErrorIsUpstream(t *testing.T) {
	svc, _ := newTestService(&stubClassifier{err: errors.New("boom")}, 64)
	defer svc.Shutdown()
	ctx := context.Background()

	u, err := svc.Upload(ctx, UploadInput{Body: bytes.NewReader(pngOfSize(32))})
	require.NoError(t, err)

	_, err = svc.Analyze(ctx, u.ID)
	assert.ErrorIs(t, err, ErrUpstream)
}
