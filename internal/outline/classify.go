package outline

import (
	"regexp"
	"strings"
	"unicode"
)

// Classifier is a single independent heading heuristic. Classifiers are
// evaluated in priority order; the first match wins.
type Classifier struct {
	Name  string
	Match func(line Line, baseline float64, cfg Config) bool
}

// Classifiers is the ordered heading-detection rule set.
var Classifiers = []Classifier{
	{Name: "font-ratio", Match: matchFontRatio},
	{Name: "bold-short", Match: matchBoldShort},
	{Name: "structural", Match: matchStructural},
}

// ClassifyHeading reports whether a line is a heading candidate and which
// classifier matched it.
func ClassifyHeading(line Line, baseline float64, cfg Config) (string, bool) {
	if strings.TrimSpace(line.Text) == "" {
		return "", false
	}
	for _, c := range Classifiers {
		if c.Match(line, baseline, cfg) {
			return c.Name, true
		}
	}
	return "", false
}

func matchFontRatio(line Line, baseline float64, cfg Config) bool {
	return baseline > 0 && line.FontSize >= baseline*cfg.HeadingRatio
}

func matchBoldShort(line Line, baseline float64, cfg Config) bool {
	return line.Bold && len(line.Text) <= cfg.BoldMaxChars && hasLetter(line.Text)
}

var numberedHeadingRe = regexp.MustCompile(
	`^(\d+(\.\d+)*[.)]?|[IVXLC]+[.)]|(Chapter|Section|Part|Appendix)\s+\w+:?)\s+\S`)

const allCapsMaxChars = 60

func matchStructural(line Line, baseline float64, cfg Config) bool {
	t := strings.TrimSpace(line.Text)
	if numberedHeadingRe.MatchString(t) && len(t) <= cfg.BoldMaxChars {
		return true
	}
	return isAllCapsShort(t)
}

// isAllCapsShort matches short shouting lines like "INGREDIENTS" that many
// documents use as headings without any font change.
func isAllCapsShort(t string) bool {
	if len(t) < 3 || len(t) > allCapsMaxChars {
		return false
	}
	if strings.HasSuffix(t, ".") {
		return false
	}
	if !hasLetter(t) {
		return false
	}
	return t == strings.ToUpper(t) && t != strings.ToLower(t)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
