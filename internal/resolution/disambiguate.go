package resolution

import (
	"context"
	"errors"
	"log/slog"

	"audioproxy/internal/models"
)

type hitCounter interface {
	CountHits(ctx context.Context, primary, secondary string) int
}

type bestMatcher interface {
	ResolveBestMatch(ctx context.Context, artist, track string) (*models.MatchResult, error)
}

// ordering is the outcome of comparing the hit counts of both token orders
type ordering int

const (
	orderingNone     ordering = iota // neither order produced hits
	orderingForward                  // first token is the artist
	orderingReversed                 // second token is the artist
	orderingTie                      // equal non-zero counts
)

func (o ordering) String() string {
	switch o {
	case orderingForward:
		return "forward"
	case orderingReversed:
		return "reversed"
	case orderingTie:
		return "tie"
	default:
		return "none"
	}
}

func decideOrdering(forwardHits, reversedHits int) ordering {
	switch {
	case forwardHits == 0 && reversedHits == 0:
		return orderingNone
	case forwardHits > reversedHits:
		return orderingForward
	case reversedHits > forwardHits:
		return orderingReversed
	default:
		return orderingTie
	}
}

// Disambiguator decides which of two tokens is the artist and which is the
// track title
type Disambiguator struct {
	counter hitCounter
	matcher bestMatcher
}

// NewDisambiguator creates a disambiguator from its collaborators
func NewDisambiguator(counter *HitCounter, matcher *Matcher) *Disambiguator {
	return &Disambiguator{
		counter: counter,
		matcher: matcher,
	}
}

// Resolve probes both orderings of (a, b) and matches the one with more hits.
// On a tie it tries (a as artist) first, then (b as artist), accepting the
// first ordering that produces any match. Calls are strictly sequential.
func (d *Disambiguator) Resolve(ctx context.Context, a, b string) (*models.MatchResult, error) {
	forwardHits := d.counter.CountHits(ctx, a, b)
	reversedHits := d.counter.CountHits(ctx, b, a)

	decision := decideOrdering(forwardHits, reversedHits)
	slog.Debug("Token ordering decided",
		"first", a,
		"second", b,
		"forwardHits", forwardHits,
		"reversedHits", reversedHits,
		"ordering", decision.String())

	switch decision {
	case orderingForward:
		return d.matchOrdering(ctx, a, b)
	case orderingReversed:
		return d.matchOrdering(ctx, b, a)
	case orderingTie:
		return d.breakTie(ctx, a, b)
	default:
		return nil, ErrSongNotFound
	}
}

// matchOrdering commits to one ordering; there is no fallback to the other
func (d *Disambiguator) matchOrdering(ctx context.Context, artist, track string) (*models.MatchResult, error) {
	match, err := d.matcher.ResolveBestMatch(ctx, artist, track)
	if err != nil {
		return nil, err
	}
	if !match.Found() {
		return nil, ErrSongNotFound
	}
	return match, nil
}

func (d *Disambiguator) breakTie(ctx context.Context, a, b string) (*models.MatchResult, error) {
	for _, pair := range [][2]string{{a, b}, {b, a}} {
		match, err := d.matcher.ResolveBestMatch(ctx, pair[0], pair[1])
		if err != nil {
			if errors.Is(err, ErrSongNotFound) {
				continue
			}
			return nil, err
		}
		if match.Found() {
			return match, nil
		}
	}

	return nil, ErrSongNotFound
}
