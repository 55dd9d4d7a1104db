package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawTokens(tokens []Token) []string {
	raws := make([]string, len(tokens))
	for i, token := range tokens {
		raws[i] = token.Raw
	}
	return raws
}

func tokensOf(raws ...string) []Token {
	tokens := make([]Token, len(raws))
	for i, raw := range raws {
		tokens[i] = newToken(raw)
	}
	return tokens
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("MF DOOM - Rapp Snitch Knishes")
	require.NoError(t, err)

	assert.Equal(t, []string{"MF DOOM", "Rapp Snitch Knishes"}, rawTokens(tokens))
	assert.Equal(t, "MF DOOM", tokens[0].Clean)
}

func TestTokenize_KeepsEmptyTokens(t *testing.T) {
	tokens, err := Tokenize("Artist -  - Title")
	require.NoError(t, err)

	assert.Equal(t, []string{"Artist", "", "Title"}, rawTokens(tokens))
}

func TestTokenize_InvalidFormat(t *testing.T) {
	for _, filename := range []string{"NoDelimiterHere", ""} {
		tokens, err := Tokenize(filename)
		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.Nil(t, tokens)
	}
}

func TestExtractAlbumNumberHint(t *testing.T) {
	hint, remaining := ExtractAlbumNumberHint(tokensOf("Madvillain", "03", "Accordion"), DefaultHintLimit)

	require.NotNil(t, hint)
	assert.Equal(t, 3, *hint)
	assert.Equal(t, []string{"Madvillain", "Accordion"}, rawTokens(remaining))
}

func TestExtractAlbumNumberHint_Cases(t *testing.T) {
	tests := []struct {
		name         string
		tokens       []string
		limit        int
		expectedHint *int
		expectedRaw  []string
	}{
		{
			name:        "fewer than three tokens",
			tokens:      []string{"01", "Title"},
			limit:       3,
			expectedRaw: []string{"01", "Title"},
		},
		{
			name:        "zero is not a hint",
			tokens:      []string{"Artist", "00", "Title"},
			limit:       3,
			expectedRaw: []string{"Artist", "00", "Title"},
		},
		{
			name:        "number beyond limit ignored",
			tokens:      []string{"Artist", "Album", "Title", "4"},
			limit:       3,
			expectedRaw: []string{"Artist", "Album", "Title", "4"},
		},
		{
			name:         "first non-zero number wins and variants removed",
			tokens:       []string{"0", "7", "Song", "07"},
			limit:        3,
			expectedHint: intPtr(7),
			expectedRaw:  []string{"0", "Song"},
		},
		{
			name:         "leading track number",
			tokens:       []string{"12", "Artist", "Title"},
			limit:        3,
			expectedHint: intPtr(12),
			expectedRaw:  []string{"Artist", "Title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint, remaining := ExtractAlbumNumberHint(tokensOf(tt.tokens...), tt.limit)

			assert.Equal(t, tt.expectedHint, hint)
			assert.Equal(t, tt.expectedRaw, rawTokens(remaining))
		})
	}
}

func TestStripAudioExtension(t *testing.T) {
	assert.Equal(t, "Madvillain - Accordion", StripAudioExtension("Madvillain - Accordion.mp3"))
	assert.Equal(t, "Madvillain - Accordion", StripAudioExtension("Madvillain - Accordion.FLAC"))
	assert.Equal(t, "Counting Crows - Mr. Jones", StripAudioExtension("Counting Crows - Mr. Jones"))
	assert.Equal(t, "notes.txt", StripAudioExtension("notes.txt"))
}

func TestCandidatePair(t *testing.T) {
	first, second, err := candidatePair(tokensOf("Artist", "", "Title", "Lyrics"))
	require.NoError(t, err)

	assert.Equal(t, "Artist", first.Clean)
	assert.Equal(t, "Title", second.Clean)

	_, _, err = candidatePair(tokensOf("Artist", "Lyrics"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func intPtr(n int) *int {
	return &n
}
