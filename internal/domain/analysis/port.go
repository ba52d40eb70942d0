package analysis

import "context"

// VisionClient is the port to the external multimodal inference service.
// Implementations must be safe for concurrent use; one client is built at
// startup and shared across requests.
type VisionClient interface {
	Analyze(ctx context.Context, image []byte, contentType string) (string, error)
}
