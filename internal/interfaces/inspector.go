package interfaces

import (
	"context"

	"trustlens/internal/model"
)

// Inspector is the cross-package contract for running a full site
// inspection. Implementations never return an error: every failure,
// hard or soft, is folded into the report itself so callers only ever
// deal with one result shape.
type Inspector interface {
	// Inspect fetches the page at url, extracts signals and produces a
	// report. Cancellation and an overall deadline are the caller's
	// responsibility via ctx.
	Inspect(ctx context.Context, url string) *model.InspectionReport

	// Close releases any resources held by the inspector.
	Close() error
}
