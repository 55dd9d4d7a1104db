package resolution

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Featured-artist and producer credits, plus everything after them
	featuringPattern = regexp.MustCompile(`(?i)\b(ft\.?|feat\.?|featuring|prod\.?)\b.*`)

	// Upload annotations commonly appended to ripped filenames
	uploadNotePattern = regexp.MustCompile(`(?i)\b(lyrics?|explicit|audio)\b.*`)

	nonSlugChars    = regexp.MustCompile(`[^a-z0-9 ]`)
	nonTokenChars   = regexp.MustCompile(`[^\p{L}\p{N} ]`)
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// questionMarkTitle is the one track title that would otherwise normalize
// to nothing (MF DOOM's "?").
const questionMarkTitle = "?"

// RewriteQuestionMark replaces a title consisting solely of "?" with its
// spelled-out form, which is how Genius slugs it.
func RewriteQuestionMark(text string) string {
	if text == questionMarkTitle {
		return "question mark"
	}
	return text
}

// ToComparisonForm reduces text to the shape of a Genius URL slug so it can
// be tested for containment against a lowercased result URL:
// "Hotline Bling (feat. X)" becomes "hotline-bling".
// The transformation is idempotent.
func ToComparisonForm(text string) string {
	if text == "" {
		return ""
	}

	text = RewriteQuestionMark(text)
	text = norm.NFC.String(text)
	text = featuringPattern.ReplaceAllString(text, "")
	text = strings.ToLower(text)
	text = spaceOut(text)
	text = nonSlugChars.ReplaceAllString(text, "")
	// Removing punctuation can expose a credit keyword ("f.t" -> "ft")
	text = featuringPattern.ReplaceAllString(text, "")
	text = collapseWhitespace(text)
	text = strings.ReplaceAll(text, " ", "-")

	return repeatedHyphens.ReplaceAllString(text, "-")
}

// ToCleanToken turns a raw filename token into a readable search term,
// preserving case: "Accordion (Official Audio)" becomes "Accordion Official".
func ToCleanToken(text string) string {
	if text == "" {
		return ""
	}

	text = RewriteQuestionMark(text)
	text = norm.NFC.String(text)
	text = stripAnnotations(text)
	text = spaceOut(text)
	text = nonTokenChars.ReplaceAllString(text, "")
	text = stripAnnotations(text)
	text = norm.NFC.String(text)

	return collapseWhitespace(text)
}

func stripAnnotations(text string) string {
	text = featuringPattern.ReplaceAllString(text, "")
	return uploadNotePattern.ReplaceAllString(text, "")
}

// spaceOut turns hyphens and any Unicode whitespace into plain spaces
func spaceOut(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
