// Package slugify form adlarından URL dostu kısa adlar üretir.
package slugify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars  = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns = regexp.MustCompile(`[-\s]+`)
)

// Make metni ASCII'ye indirger, küçük harfe çevirir ve boşluk/tire
// dizilerini tek bir tireye dönüştürür. Baştaki ve sondaki "-" ve "_"
// karakterleri atılır.
func Make(value string) string {
	decomposed := norm.NFKD.String(value)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}

	s := invalidChars.ReplaceAllString(strings.ToLower(b.String()), "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-_")
}

// WithFallback Make sonucu boşsa fallback değerini döner.
func WithFallback(value, fallback string) string {
	if s := Make(value); s != "" {
		return s
	}
	return fallback
}

// Truncate slug'ı en fazla max bayta kısaltır, sondaki tireleri temizler.
func Truncate(slug string, max int) string {
	if max <= 0 || len(slug) <= max {
		return slug
	}
	return strings.TrimRight(slug[:max], "-_")
}
