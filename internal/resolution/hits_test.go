package resolution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"audioproxy/internal/testutil"
)

func TestCountHits(t *testing.T) {
	client := &testutil.MockSearchClient{}
	testutil.ExpectSearch(client, "Accordion Madvillain", testutil.Hits(
		"https://genius.com/Madvillain-accordion-lyrics", "1",
		"https://genius.com/Madvillain-madvillainy-tracklist", "2",
	), nil)

	count := NewHitCounter(client).CountHits(context.Background(), "Madvillain", "Accordion")

	assert.Equal(t, 2, count)
	client.AssertExpectations(t)
}

func TestCountHits_RewritesQuestionMark(t *testing.T) {
	client := &testutil.MockSearchClient{}
	testutil.ExpectSearch(client, "MF DOOM question mark", testutil.Hits(
		"https://genius.com/Mf-doom-question-mark-lyrics", "77",
	), nil)

	count := NewHitCounter(client).CountHits(context.Background(), "?", "MF DOOM")

	assert.Equal(t, 1, count)
	client.AssertExpectations(t)
}

func TestCountHits_ProbeFailureCountsAsZero(t *testing.T) {
	client := &testutil.MockSearchClient{}
	testutil.ExpectSearch(client, "Accordion Madvillain", nil, errors.New("connection reset"))

	count := NewHitCounter(client).CountHits(context.Background(), "Madvillain", "Accordion")

	assert.Equal(t, 0, count)
}
