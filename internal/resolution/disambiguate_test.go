package resolution

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"audioproxy/internal/models"
)

type mockHitCounter struct {
	mock.Mock
}

func (m *mockHitCounter) CountHits(ctx context.Context, primary, secondary string) int {
	args := m.Called(ctx, primary, secondary)
	return args.Int(0)
}

type mockMatcher struct {
	mock.Mock
}

func (m *mockMatcher) ResolveBestMatch(ctx context.Context, artist, track string) (*models.MatchResult, error) {
	args := m.Called(ctx, artist, track)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchResult), args.Error(1)
}

func newTestDisambiguator(forwardHits, reversedHits int) (*Disambiguator, *mockHitCounter, *mockMatcher) {
	counter := &mockHitCounter{}
	counter.On("CountHits", mock.Anything, "A", "B").Return(forwardHits).Once()
	counter.On("CountHits", mock.Anything, "B", "A").Return(reversedHits).Once()

	matcher := &mockMatcher{}
	return &Disambiguator{counter: counter, matcher: matcher}, counter, matcher
}

func foundMatch(artist, track string, kind models.MatchKind) *models.MatchResult {
	return &models.MatchResult{
		Artist: artist,
		Track:  track,
		URL:    fmt.Sprintf("https://genius.com/%s-%s-lyrics", artist, track),
		SongID: "42",
		Kind:   kind,
	}
}

func TestDecideOrdering(t *testing.T) {
	tests := []struct {
		forward  int
		reversed int
		expected ordering
	}{
		{0, 0, orderingNone},
		{3, 0, orderingForward},
		{0, 5, orderingReversed},
		{2, 7, orderingReversed},
		{4, 4, orderingTie},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d", tt.forward, tt.reversed), func(t *testing.T) {
			assert.Equal(t, tt.expected, decideOrdering(tt.forward, tt.reversed))
		})
	}
}

func TestResolve_ForwardOrderingWins(t *testing.T) {
	d, counter, matcher := newTestDisambiguator(3, 0)
	matcher.On("ResolveBestMatch", mock.Anything, "A", "B").
		Return(foundMatch("A", "B", models.MatchExact), nil).Once()

	match, err := d.Resolve(context.Background(), "A", "B")
	require.NoError(t, err)

	assert.Equal(t, "A", match.Artist)
	assert.Equal(t, "B", match.Track)
	matcher.AssertNotCalled(t, "ResolveBestMatch", mock.Anything, "B", "A")
	counter.AssertExpectations(t)
	matcher.AssertExpectations(t)
}

func TestResolve_ReversedOrderingWins(t *testing.T) {
	d, _, matcher := newTestDisambiguator(0, 5)
	matcher.On("ResolveBestMatch", mock.Anything, "B", "A").
		Return(foundMatch("B", "A", models.MatchFallback), nil).Once()

	match, err := d.Resolve(context.Background(), "A", "B")
	require.NoError(t, err)

	assert.Equal(t, "B", match.Artist)
	assert.Equal(t, "A", match.Track)
	matcher.AssertNotCalled(t, "ResolveBestMatch", mock.Anything, "A", "B")
}

func TestResolve_NoHitsSkipsMatcher(t *testing.T) {
	d, _, matcher := newTestDisambiguator(0, 0)

	match, err := d.Resolve(context.Background(), "A", "B")

	assert.ErrorIs(t, err, ErrSongNotFound)
	assert.Nil(t, match)
	matcher.AssertNotCalled(t, "ResolveBestMatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_ChosenOrderingWithoutMatch(t *testing.T) {
	d, _, matcher := newTestDisambiguator(3, 1)
	matcher.On("ResolveBestMatch", mock.Anything, "A", "B").
		Return(models.NewNotFoundMatch("A", "B"), nil).Once()

	match, err := d.Resolve(context.Background(), "A", "B")

	assert.ErrorIs(t, err, ErrSongNotFound)
	assert.Nil(t, match)
	matcher.AssertNotCalled(t, "ResolveBestMatch", mock.Anything, "B", "A")
}

func TestResolve_ChosenOrderingPropagatesErrors(t *testing.T) {
	d, _, matcher := newTestDisambiguator(2, 0)
	upstream := errors.New("search failed")
	matcher.On("ResolveBestMatch", mock.Anything, "A", "B").Return(nil, upstream).Once()

	_, err := d.Resolve(context.Background(), "A", "B")

	assert.ErrorIs(t, err, upstream)
}

func TestResolve_TieFallsThroughToReversed(t *testing.T) {
	d, _, matcher := newTestDisambiguator(2, 2)
	matcher.On("ResolveBestMatch", mock.Anything, "A", "B").
		Return(models.NewNotFoundMatch("A", "B"), nil).Once()
	matcher.On("ResolveBestMatch", mock.Anything, "B", "A").
		Return(foundMatch("B", "A", models.MatchExact), nil).Once()

	match, err := d.Resolve(context.Background(), "A", "B")
	require.NoError(t, err)

	assert.Equal(t, "B", match.Artist)
	assert.Equal(t, "A", match.Track)
	matcher.AssertExpectations(t)
}

func TestResolve_TieSkipsOrderingWithZeroHits(t *testing.T) {
	d, _, matcher := newTestDisambiguator(1, 1)
	matcher.On("ResolveBestMatch", mock.Anything, "A", "B").
		Return(nil, fmt.Errorf("%w: no hits", ErrSongNotFound)).Once()
	matcher.On("ResolveBestMatch", mock.Anything, "B", "A").
		Return(foundMatch("B", "A", models.MatchExact), nil).Once()

	match, err := d.Resolve(context.Background(), "A", "B")
	require.NoError(t, err)

	assert.Equal(t, "B", match.Artist)
}

func TestResolve_TieAcceptsFallbackOnFirstOrdering(t *testing.T) {
	d, _, matcher := newTestDisambiguator(4, 4)
	matcher.On("ResolveBestMatch", mock.Anything, "A", "B").
		Return(foundMatch("A", "B", models.MatchFallback), nil).Once()

	match, err := d.Resolve(context.Background(), "A", "B")
	require.NoError(t, err)

	assert.Equal(t, models.MatchFallback, match.Kind)
	matcher.AssertNotCalled(t, "ResolveBestMatch", mock.Anything, "B", "A")
}

func TestResolve_TieWithoutAnyMatch(t *testing.T) {
	d, _, matcher := newTestDisambiguator(1, 1)
	matcher.On("ResolveBestMatch", mock.Anything, "A", "B").
		Return(models.NewNotFoundMatch("A", "B"), nil).Once()
	matcher.On("ResolveBestMatch", mock.Anything, "B", "A").
		Return(models.NewNotFoundMatch("B", "A"), nil).Once()

	_, err := d.Resolve(context.Background(), "A", "B")

	assert.ErrorIs(t, err, ErrSongNotFound)
	matcher.AssertExpectations(t)
}

func TestResolve_TieStopsOnTransportError(t *testing.T) {
	d, _, matcher := newTestDisambiguator(1, 1)
	upstream := errors.New("connection refused")
	matcher.On("ResolveBestMatch", mock.Anything, "A", "B").Return(nil, upstream).Once()

	_, err := d.Resolve(context.Background(), "A", "B")

	assert.ErrorIs(t, err, upstream)
	matcher.AssertNotCalled(t, "ResolveBestMatch", mock.Anything, "B", "A")
}
