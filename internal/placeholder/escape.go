package placeholder

import "strings"

// EscapeSettings describes how a raw value is made safe for embedding into a
// string literal of the target script language.
type EscapeSettings struct {
	EscapeCharacter           string `json:"escape_character" yaml:"escape_character"`
	CharactersNeedingEscaping string `json:"characters_needing_escaping" yaml:"characters_needing_escaping"`
	NewlineCharacter          string `json:"newline_character" yaml:"newline_character"`
}

// Escape prefixes every character listed in CharactersNeedingEscaping with the
// escape character and replaces line breaks with NewlineCharacter.
// The value is scanned once, so an escape character that is itself in the set
// is never escaped twice.
func Escape(value string, s EscapeSettings) string {
	if s.EscapeCharacter != "" && s.CharactersNeedingEscaping != "" {
		var sb strings.Builder
		sb.Grow(len(value))
		for _, r := range value {
			if strings.ContainsRune(s.CharactersNeedingEscaping, r) {
				sb.WriteString(s.EscapeCharacter)
			}
			sb.WriteRune(r)
		}
		value = sb.String()
	}

	if s.NewlineCharacter != "" {
		value = strings.ReplaceAll(value, "\r\n", "\n")
		value = strings.ReplaceAll(value, "\n", s.NewlineCharacter)
	}

	return value
}

// NormalizeLineEndings converts every line ending to CRLF.
func NormalizeLineEndings(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	value = strings.ReplaceAll(value, "\r", "\n")
	return strings.ReplaceAll(value, "\n", "\r\n")
}
