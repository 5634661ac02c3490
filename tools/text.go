package tools

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TextStats is the result of TextStatistics.
type TextStats struct {
	WordCount     int     `json:"word_count"`
	CharCount     int     `json:"char_count"`
	AvgWordLength float64 `json:"avg_word_length"`
	SentenceCount int     `json:"sentence_count"`
}

// TextStatistics counts whitespace-separated words, characters and sentence
// terminators (. ! ?) in text.
func TextStatistics(text string) TextStats {
	words := strings.FieldsFunc(text, isWordSeparator)
	stats := TextStats{
		WordCount:     len(words),
		CharCount:     utf8.RuneCountInString(text),
		SentenceCount: strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?"),
	}
	if len(words) > 0 {
		var letters int
		for _, word := range words {
			letters += utf8.RuneCountInString(word)
		}
		stats.AvgWordLength = float64(letters) / float64(len(words))
	}
	return stats
}

// isWordSeparator treats the ASCII file, group, record and unit separators
// (U+001C to U+001F) as whitespace alongside the Unicode space characters.
func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
