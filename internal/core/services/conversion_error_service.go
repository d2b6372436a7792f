package services

import (
	"context"
	"time"

	"github.com/vorsorgeapp/pension_backend/internal/core/domain"
	portsrepo "github.com/vorsorgeapp/pension_backend/internal/core/ports/repositories"
)

// ConversionErrorService exposes the durable ledger of unresolved conversions.
type ConversionErrorService struct {
	errorRepo portsrepo.ConversionErrorRepositoryFacade
}

// NewConversionErrorService creates a new ConversionErrorService.
func NewConversionErrorService(errorRepo portsrepo.ConversionErrorRepositoryFacade) *ConversionErrorService {
	return &ConversionErrorService{errorRepo: errorRepo}
}

// RecordConversionError upserts a record for the (source, target, date) triple.
func (s *ConversionErrorService) RecordConversionError(ctx context.Context, source, target string, date time.Time, errContext string) error {
	return s.errorRepo.RecordConversionError(ctx, source, target, date, errContext)
}

// ListUnresolved retrieves unresolved records, oldest first.
func (s *ConversionErrorService) ListUnresolved(ctx context.Context, limit int) ([]domain.ConversionError, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.errorRepo.ListUnresolvedConversionErrors(ctx, limit)
}

// Resolve marks a record resolved with the current time.
func (s *ConversionErrorService) Resolve(ctx context.Context, errorID string) error {
	return s.errorRepo.ResolveConversionError(ctx, errorID)
}
