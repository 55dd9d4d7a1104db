package resolution

import (
	"context"
	"log/slog"

	"audioproxy/internal/services"
)

// HitCounter probes how many search hits a token ordering produces
type HitCounter struct {
	client services.SearchClient
}

// NewHitCounter creates a new hit counter
func NewHitCounter(client services.SearchClient) *HitCounter {
	return &HitCounter{client: client}
}

// CountHits searches for "secondary primary" and returns the number of hits.
// A failed probe counts as zero hits instead of aborting disambiguation.
func (h *HitCounter) CountHits(ctx context.Context, primary, secondary string) int {
	query := secondary + " " + RewriteQuestionMark(primary)

	hits, err := h.client.Search(ctx, query)
	if err != nil {
		slog.Warn("Hit count probe failed, treating as zero hits",
			"query", query,
			"error", err)
		return 0
	}

	return len(hits)
}
