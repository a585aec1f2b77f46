package interfaces

import (
	"context"

	"trustlens/internal/model"
)

// WebClient abstracts outbound HTTP so the fetch path can be served by a
// plain net/http client or a rendering backend interchangeably.
type WebClient interface {
	Do(ctx context.Context, req *model.Request) (*model.Response, error)

	// Get is a convenience method for simple GET requests.
	Get(ctx context.Context, url string) (*model.Response, error)

	Close() error
}
