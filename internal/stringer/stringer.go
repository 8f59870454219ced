package stringer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/width"
)

var printer *message.Printer

func init() {
	printer = message.NewPrinter(language.Spanish)
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// CleanName folds full-width characters, collapses whitespace and cuts the
// result to at most max runes.
func CleanName(s string, max int) string {
	s = strings.Join(strings.Fields(width.Fold.String(s)), " ")
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:max]))
}

// Pad right-pads s with spaces to n runes.
func Pad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

func FormatScore(score int) string {
	return printer.Sprintf("%d", score)
}

func FormatDelta(delta int) string {
	return printer.Sprintf("%+d", delta)
}
