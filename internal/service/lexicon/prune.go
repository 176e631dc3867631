package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/phonogen/internal/domain"
)

// PruneLanguages deletes stored languages older than retention, measured
// from now, and returns how many were removed.
func (s *Service) PruneLanguages(ctx context.Context, retention time.Duration, now time.Time) (int64, error) {
	if retention <= 0 {
		return 0, domain.NewValidationError("retention", "must be positive")
	}

	threshold := now.Add(-retention)
	deleted, err := s.repo.DeleteLanguagesBefore(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("prune languages: %w", err)
	}

	s.log.InfoContext(ctx, "languages pruned",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
	return deleted, nil
}
