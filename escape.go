package hl7

import (
	"strings"
	"unicode/utf8"
)

// Escape replaces delimiter characters in s with HL7 escape sequences
// (\F\ \S\ \R\ \E\ \T\). Well-formed sequences Unescape keeps verbatim,
// such as \.br\ or \H\, are written back unchanged.
func Escape(s string, sep Separators) string {
	e := sep.Escape
	if e == "" || !strings.ContainsAny(s, sep.Field+sep.Component+sep.Repetition+sep.Escape+sep.SubComponent) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for len(s) > 0 {
		if strings.HasPrefix(s, e) {
			if n := keptSequence(s, sep); n > 0 {
				b.WriteString(s[:n])
				s = s[n:]
				continue
			}
		}
		ch, size := utf8.DecodeRuneInString(s)
		switch string(ch) {
		case e:
			b.WriteString(e + "E" + e)
		case sep.Field:
			b.WriteString(e + "F" + e)
		case sep.Component:
			b.WriteString(e + "S" + e)
		case sep.Repetition:
			b.WriteString(e + "R" + e)
		case sep.SubComponent:
			b.WriteString(e + "T" + e)
		default:
			b.WriteRune(ch)
		}
		s = s[size:]
	}
	return b.String()
}

// keptSequence returns the length of the escape sequence opening s when it is
// one Unescape leaves alone, or 0. Its body is not empty, is not a delimiter
// code and holds no delimiter.
func keptSequence(s string, sep Separators) int {
	e := sep.Escape
	rest := s[len(e):]
	j := strings.Index(rest, e)
	if j <= 0 {
		return 0
	}
	body := rest[:j]
	switch body {
	case "F", "S", "R", "E", "T":
		return 0
	}
	if strings.ContainsAny(body, sep.Field+sep.Component+sep.Repetition+sep.SubComponent) {
		return 0
	}
	return len(e) + j + len(e)
}

// Unescape reverses Escape. Sequences it does not know (\H\, \N\, \.br\,
// \Xdd\ ...) and unterminated sequences are kept verbatim.
func Unescape(s string, sep Separators) string {
	e := sep.Escape
	if e == "" || !strings.Contains(s, e) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strings.Index(s, e)
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		rest := s[i+len(e):]
		j := strings.Index(rest, e)
		if j < 0 {
			b.WriteString(s[i:])
			break
		}
		switch rest[:j] {
		case "F":
			b.WriteString(sep.Field)
		case "S":
			b.WriteString(sep.Component)
		case "R":
			b.WriteString(sep.Repetition)
		case "E":
			b.WriteString(e)
		case "T":
			b.WriteString(sep.SubComponent)
		default:
			b.WriteString(e + rest[:j] + e)
		}
		s = rest[j+len(e):]
	}
	return b.String()
}
