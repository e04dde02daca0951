package http

import (
	"context"
	"io"

	"github.com/jineuihong-coder/iso-findings/internal/dataset"
	"github.com/jineuihong-coder/iso-findings/internal/engine"
	"github.com/jineuihong-coder/iso-findings/internal/services"
)

// FindingsServiceInterface defines what handlers need from the findings
// service, kept narrow for testability.
type FindingsServiceInterface interface {
	Search(ctx context.Context, c engine.Criteria) (dataset.Table, error)
	Summary(ctx context.Context, c engine.Criteria) (*services.SummaryReport, error)
	FilterOptions(ctx context.Context) (*services.FilterOptions, error)
	LoadWorkbook(ctx context.Context, r io.Reader, source string) error
	Reset(ctx context.Context)
	Status(ctx context.Context) *services.SnapshotStatus
}
