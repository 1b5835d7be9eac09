package repository

import (
	"context"

	"github.com/alexanderramin/fincerdas/internal/domain"
)

// ProgressRepo stores the single progress document. Load never fails with an
// empty or corrupt store: it falls back to the schema default so a damaged
// document costs stored progress, never a crash.
type ProgressRepo interface {
	Load(ctx context.Context) (*domain.ProgressDocument, error)
	Save(ctx context.Context, doc *domain.ProgressDocument) error
}
