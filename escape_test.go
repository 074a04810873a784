package hl7

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	sep := DefaultSeparators()
	tests := []struct {
		plain   string
		escaped string
	}{
		{"plain text", "plain text"},
		{"a|b", `a\F\b`},
		{"a^b", `a\S\b`},
		{"a~b", `a\R\b`},
		{"a&b", `a\T\b`},
		{`C:\temp`, `C:\E\temp`},
		{"|^~&", `\F\\S\\R\\T\`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.escaped, Escape(tt.plain, sep))
		assert.Equal(t, tt.plain, Unescape(tt.escaped, sep))
	}
}

func TestUnescapeKeepsUnknownSequences(t *testing.T) {
	sep := DefaultSeparators()
	assert.Equal(t, `line\.br\next`, Unescape(`line\.br\next`, sep))
	assert.Equal(t, `\H\bold\N\`, Unescape(`\H\bold\N\`, sep))
	assert.Equal(t, `dangling\`, Unescape(`dangling\`, sep))
}

func TestEscapeCustomSeparators(t *testing.T) {
	sep := Separators{Field: "#", Component: ":", Repetition: "*", Escape: "!", SubComponent: "@"}
	assert.Equal(t, "a!F!b!S!c", Escape("a#b:c", sep))
	assert.Equal(t, "a#b:c", Unescape("a!F!b!S!c", sep))
	assert.Equal(t, "a|b", Escape("a|b", sep))
}

func TestEscapeKeepsUnknownSequences(t *testing.T) {
	sep := DefaultSeparators()
	tests := []struct {
		plain   string
		escaped string
	}{
		{`line one\.br\line two`, `line one\.br\line two`},
		{`\H\bold\N\ text`, `\H\bold\N\ text`},
		{`\X0D0A\`, `\X0D0A\`},
		{`\.sp2\a|b`, `\.sp2\a\F\b`},
		{`C:\temp`, `C:\E\temp`},
		{`a\b^c\d`, `a\E\b\S\c\E\d`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.escaped, Escape(tt.plain, sep), tt.plain)
		assert.Equal(t, tt.plain, Unescape(tt.escaped, sep), tt.escaped)
	}
}
