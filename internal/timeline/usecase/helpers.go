package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wedding-timeline/internal/timeline"
)

// parseWeddingDate resolves an absolute or relative date in the configured
// timezone. An empty string means no date has been set and yields a zero time.
func (uc *implUseCase) parseWeddingDate(ctx context.Context, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	wedding, err := uc.dateMath.ParseDate(raw, uc.engine.Now())
	if err != nil {
		uc.l.Warnf(ctx, "parseWeddingDate: cannot parse %q: %v", raw, err)
		return time.Time{}, fmt.Errorf("%w: %q", timeline.ErrInvalidWeddingDate, raw)
	}
	return wedding, nil
}
