package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToComparisonForm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain title", "Hotline Bling", "hotline-bling"},
		{"featured artist in parentheses", "Hotline Bling (feat. Someone)", "hotline-bling"},
		{"ft abbreviation", "Song ft. Guest Verse", "song"},
		{"featuring spelled out", "Track Featuring Somebody", "track"},
		{"producer credit", "Beat Tape prod. by Madlib", "beat-tape"},
		{"hyphenated name keeps hyphen", "Jay-Z", "jay-z"},
		{"punctuation removed", "Don't Stop (Remix)!", "dont-stop-remix"},
		{"whitespace collapsed and trimmed", "  Multiple   Spaces  ", "multiple-spaces"},
		{"non-breaking space", "Hotline\u00a0Bling", "hotline-bling"},
		{"repeated hyphens", "A -- B", "a-b"},
		{"question mark title", "?", "question-mark"},
		{"word containing ft is kept", "Soft Cell", "soft-cell"},
		{"word starting with prod is kept", "Prodigy", "prodigy"},
		{"accented letters dropped", "Beyoncé", "beyonc"},
		{"only annotation", "feat. Nobody", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToComparisonForm(tt.input))
		})
	}
}

func TestToComparisonForm_Idempotent(t *testing.T) {
	inputs := []string{
		"Hotline Bling",
		"Hotline Bling (feat. Someone)",
		"Jay-Z",
		"f.t",
		"fe-at",
		"-leading and trailing-",
		"Don't Stop (Remix)!",
		"x (prod. y)",
		"Beyoncé",
		"Ça Plane Pour Moi",
		"?",
		"question-mark",
		"1999 -- 2000",
		"",
	}

	for _, input := range inputs {
		once := ToComparisonForm(input)
		assert.Equal(t, once, ToComparisonForm(once), "input %q", input)
	}
}

func TestToCleanToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain token", "Rapp Snitch Knishes", "Rapp Snitch Knishes"},
		{"case preserved", "MF DOOM", "MF DOOM"},
		{"audio annotation", "Accordion (Official Audio)", "Accordion Official"},
		{"lyrics annotation", "Hotline Bling Lyrics", "Hotline Bling"},
		{"lyric annotation", "Hotline Bling [Lyric Video]", "Hotline Bling"},
		{"explicit annotation", "Song [Explicit]", "Song"},
		{"featured and audio", "Song (feat. X) [Audio]", "Song"},
		{"unicode letters kept", "Beyoncé", "Beyoncé"},
		{"hyphen becomes space", "Jay-Z", "Jay Z"},
		{"question mark title", "?", "question mark"},
		{"only annotation", "Lyrics", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCleanToken(tt.input))
		})
	}
}

func TestToCleanToken_Idempotent(t *testing.T) {
	inputs := []string{
		"Accordion (Official Audio)",
		"Song (feat. X) [Audio]",
		"Beyoncé",
		"a.u.d.i.o",
		"?",
		"  spaced   out  ",
	}

	for _, input := range inputs {
		once := ToCleanToken(input)
		assert.Equal(t, once, ToCleanToken(once), "input %q", input)
	}
}

func TestRewriteQuestionMark(t *testing.T) {
	assert.Equal(t, "question mark", RewriteQuestionMark("?"))
	assert.Equal(t, "??", RewriteQuestionMark("??"))
	assert.Equal(t, "What?", RewriteQuestionMark("What?"))
	assert.Equal(t, "", RewriteQuestionMark(""))
}
