package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}+#]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Key приводит фразу к виду для сравнения:
// нижний регистр, пунктуация → пробел, пробелы схлопнуты.
// "+" и "#" сохраняются, чтобы "C++" и "C#" не совпадали с "C".
func Key(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanList trims entries, drops empty ones and removes duplicates by Key.
// The first spelling of a duplicate wins; order is kept. Never returns nil.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = reSpaces.ReplaceAllString(strings.TrimSpace(it), " ")
		k := Key(it)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}
