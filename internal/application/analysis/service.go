package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/balagh-app/vision-api/internal/application"
	domain "github.com/balagh-app/vision-api/internal/domain/analysis"
)

// DefaultTimeout bounds a single inference call when no timeout is configured.
const DefaultTimeout = 60 * time.Second

// Upload is one inbound image, held only for the lifetime of the request.
type Upload struct {
	Data        []byte
	ContentType string
	Size        int64
}

// Service runs the analysis pipeline: validate the upload, call the vision
// service, normalize its output. Stateless and safe for concurrent use;
// the only shared resource is the process-lifetime vision client.
type Service struct {
	Vision  domain.VisionClient
	Timeout time.Duration
	Clock   application.Clock
}

func NewService(vision domain.VisionClient, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{Vision: vision, Timeout: timeout, Clock: application.SystemClock{}}
}

// Analyze returns a well-formed report for every input that passes upload
// validation. A validation failure is returned as-is for the router to map
// to 400. An inference failure comes back as ErrInferenceUnavailable with
// the cause attached for logging; malformed model output is absorbed into
// an empty report and never returned as an error.
func (s *Service) Analyze(ctx context.Context, up Upload) (domain.Report, error) {
	if err := domain.ValidateUpload(up.ContentType, up.Size); err != nil {
		return domain.EmptyReport(), err
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	start := s.Clock.Now()
	raw, err := s.Vision.Analyze(ctx, up.Data, up.ContentType)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.EmptyReport(), fmt.Errorf("%w: timed out after %s", domain.ErrInferenceUnavailable, s.Timeout)
		}
		return domain.EmptyReport(), fmt.Errorf("%w: %v", domain.ErrInferenceUnavailable, err)
	}

	report, err := domain.Normalize(raw)
	if err != nil {
		// Model formatting slip, not a system failure. Empty report goes out.
		log.Printf("normalize: degraded to empty report: %v", err)
	}
	log.Printf("analysis done findings=%d duration=%s", report.Len(), s.Clock.Now().Sub(start))
	return report, nil
}
