package resolution

import (
	"context"
	"fmt"
	"strings"

	"audioproxy/internal/models"
	"audioproxy/internal/services"
)

// Matcher selects the best search hit for an (artist, track) pair by slug
// containment
type Matcher struct {
	client services.SearchClient
}

// NewMatcher creates a new matcher
func NewMatcher(client services.SearchClient) *Matcher {
	return &Matcher{client: client}
}

// ResolveBestMatch searches for "artist track" and scans the hits in API
// order. The first hit whose URL contains both the artist and track slugs
// wins outright; otherwise the first hit containing only the track slug is
// used. Zero hits yields ErrSongNotFound, while hits without any containment
// yield a not-found MatchResult.
func (m *Matcher) ResolveBestMatch(ctx context.Context, artist, track string) (*models.MatchResult, error) {
	query := artist + " " + RewriteQuestionMark(track)

	hits, err := m.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search for %q: %w", query, err)
	}
	if len(hits) == 0 {
		return nil, fmt.Errorf("%w: no hits for %q", ErrSongNotFound, query)
	}

	return selectBestHit(hits, artist, track), nil
}

func selectBestHit(hits []services.SearchHit, artist, track string) *models.MatchResult {
	artistSlug := ToComparisonForm(artist)
	trackSlug := ToComparisonForm(track)

	result := models.NewNotFoundMatch(artist, track)
	if trackSlug == "" {
		return result
	}

	var fallback *services.SearchHit
	for i := range hits {
		hit := &hits[i]
		if hit.URL == "" {
			continue
		}

		url := strings.ToLower(hit.URL)
		if !strings.Contains(url, trackSlug) {
			continue
		}

		if artistSlug != "" && strings.Contains(url, artistSlug) {
			result.URL = hit.URL
			result.SongID = hit.SongID
			result.Kind = models.MatchExact
			return result
		}

		if fallback == nil {
			fallback = hit
		}
	}

	if fallback != nil {
		result.URL = fallback.URL
		result.SongID = fallback.SongID
		result.Kind = models.MatchFallback
	}

	return result
}
