package resolution

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultHintLimit is how many leading tokens are inspected for a track number
const DefaultHintLimit = 3

const tokenDelimiter = "-"

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".aac":  true,
	".ogg":  true,
	".opus": true,
	".wav":  true,
	".wma":  true,
	".aiff": true,
	".alac": true,
}

// Token is one delimiter-separated piece of a filename
type Token struct {
	Raw   string
	Clean string
}

func newToken(raw string) Token {
	return Token{Raw: raw, Clean: ToCleanToken(raw)}
}

// StripAudioExtension removes a trailing audio file extension, leaving
// anything else (e.g. "Mr. Jones") untouched.
func StripAudioExtension(filename string) string {
	ext := filepath.Ext(filename)
	if audioExtensions[strings.ToLower(ext)] {
		return strings.TrimSuffix(filename, ext)
	}
	return filename
}

// Tokenize splits a filename on hyphens. Pieces are trimmed but empty ones
// are kept so positions are preserved.
func Tokenize(filename string) ([]Token, error) {
	pieces := strings.Split(filename, tokenDelimiter)

	tokens := make([]Token, 0, len(pieces))
	for _, piece := range pieces {
		tokens = append(tokens, newToken(strings.TrimSpace(piece)))
	}

	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: %q has fewer than 2 tokens", ErrInvalidFormat, filename)
	}

	return tokens, nil
}

// ExtractAlbumNumberHint looks at the first limit tokens for one that parses
// as a non-zero integer. That token, and any other token spelling the same
// number plainly or zero-padded, is removed from the returned slice. With
// fewer than 3 tokens, or no usable number, the tokens come back unchanged
// and the hint is nil.
func ExtractAlbumNumberHint(tokens []Token, limit int) (*int, []Token) {
	if len(tokens) < 3 {
		return nil, tokens
	}

	hintIndex := -1
	hint := 0
	for i := 0; i < len(tokens) && i < limit; i++ {
		n, err := strconv.Atoi(tokens[i].Raw)
		if err != nil || n == 0 {
			continue
		}
		hintIndex = i
		hint = n
		break
	}

	if hintIndex < 0 {
		return nil, tokens
	}

	plain := strconv.Itoa(hint)
	padded := fmt.Sprintf("%02d", hint)

	remaining := make([]Token, 0, len(tokens)-1)
	for i, token := range tokens {
		if i == hintIndex || token.Raw == plain || token.Raw == padded {
			continue
		}
		remaining = append(remaining, token)
	}

	return &hint, remaining
}

// candidatePair picks the tokens that will be disambiguated into artist and
// track: the first and last tokens that survive cleaning.
func candidatePair(tokens []Token) (Token, Token, error) {
	usable := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Clean != "" {
			usable = append(usable, token)
		}
	}

	if len(usable) < 2 {
		return Token{}, Token{}, fmt.Errorf("%w: fewer than 2 usable tokens", ErrInvalidFormat)
	}

	return usable[0], usable[len(usable)-1], nil
}
