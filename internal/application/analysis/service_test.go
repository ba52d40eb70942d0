package analysis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalysis "github.com/balagh-app/vision-api/internal/application/analysis"
	domain "github.com/balagh-app/vision-api/internal/domain/analysis"
)

// stubVision is a hand-rolled VisionClient for tests.
type stubVision struct {
	output string
	err    error
	calls  int
	block  time.Duration
}

func (s *stubVision) Analyze(ctx context.Context, image []byte, contentType string) (string, error) {
	s.calls++
	if s.block > 0 {
		select {
		case <-time.After(s.block):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.output, s.err
}

func validUpload() appanalysis.Upload {
	data := []byte("\x89PNG fake image bytes")
	return appanalysis.Upload{Data: data, ContentType: "image/png", Size: int64(len(data))}
}

func TestAnalyzeSuccess(t *testing.T) {
	vision := &stubVision{output: `{"problems":["leaking pipe"],"problem_types":["maintenance"],"suggestions":["call a plumber"]}`}
	svc := appanalysis.NewService(vision, time.Second)

	report, err := svc.Analyze(context.Background(), validUpload())
	require.NoError(t, err)
	assert.Equal(t, []string{"leaking pipe"}, report.Problems)
	assert.Equal(t, []string{"maintenance"}, report.ProblemTypes)
	assert.Equal(t, []string{"call a plumber"}, report.Suggestions)
	assert.Equal(t, 1, vision.calls)
}

func TestAnalyzeValidationStopsPipeline(t *testing.T) {
	vision := &stubVision{output: `{}`}
	svc := appanalysis.NewService(vision, time.Second)

	_, err := svc.Analyze(context.Background(), appanalysis.Upload{
		Data:        []byte("hello"),
		ContentType: "text/plain",
		Size:        5,
	})
	assert.ErrorIs(t, err, domain.ErrNotAnImage)
	assert.Equal(t, 0, vision.calls, "vision service must not be called for invalid uploads")
}

func TestAnalyzeInferenceFailure(t *testing.T) {
	vision := &stubVision{err: errors.New("dial tcp: connection refused")}
	svc := appanalysis.NewService(vision, time.Second)

	report, err := svc.Analyze(context.Background(), validUpload())
	assert.ErrorIs(t, err, domain.ErrInferenceUnavailable)
	assert.Equal(t, domain.EmptyReport(), report)
}

func TestAnalyzeTimeout(t *testing.T) {
	vision := &stubVision{block: 500 * time.Millisecond}
	svc := appanalysis.NewService(vision, 20*time.Millisecond)

	start := time.Now()
	report, err := svc.Analyze(context.Background(), validUpload())
	assert.ErrorIs(t, err, domain.ErrInferenceUnavailable)
	assert.Equal(t, domain.EmptyReport(), report)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "must return near the timeout bound, not hang")
}

func TestAnalyzeMalformedOutputDegradesToEmpty(t *testing.T) {
	vision := &stubVision{output: `the photo shows a street with a pothole`}
	svc := appanalysis.NewService(vision, time.Second)

	report, err := svc.Analyze(context.Background(), validUpload())
	require.NoError(t, err, "a model formatting slip is not a pipeline failure")
	assert.Equal(t, domain.EmptyReport(), report)
}

func TestAnalyzeZeroFindings(t *testing.T) {
	vision := &stubVision{output: `{"problems":[],"problem_types":[],"suggestions":[]}`}
	svc := appanalysis.NewService(vision, time.Second)

	report, err := svc.Analyze(context.Background(), validUpload())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Len())
	assert.True(t, report.Aligned())
}
