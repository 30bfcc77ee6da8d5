// Package privacy implements the best-effort privacy-mode scrub applied to
// document text before it leaves the service. It is a heuristic regex pass,
// not a guaranteed anonymization: it over-matches capitalized prose and
// under-matches names or numbers outside the US-style formats below.
package privacy

import (
	"regexp"
	"strings"
)

const (
	NamePlaceholder    = "[NAME]"
	SSNPlaceholder     = "[SSN]"
	PhonePlaceholder   = "[PHONE]"
	EmailPlaceholder   = "[EMAIL]"
	AddressPlaceholder = "[ADDRESS]"
)

var (
	nameRunPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`)
	ssnPattern     = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	phonePattern   = regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`)
	emailPattern   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	addressPattern = regexp.MustCompile(`(?i)\b\d{1,5}\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd)\b`)
)

// streetSuffixes are capitalized-run tails that belong to the address pass,
// not the name pass ("Main Street" must survive until addressPattern runs).
var streetSuffixes = map[string]struct{}{
	"Street": {}, "St": {}, "Avenue": {}, "Ave": {}, "Road": {}, "Rd": {},
	"Drive": {}, "Dr": {}, "Lane": {}, "Ln": {}, "Boulevard": {}, "Blvd": {},
}

// Scrub masks name-like runs, SSNs, phone numbers, email addresses and
// street addresses with fixed placeholders. The substitution order is fixed:
// name, SSN, phone, email, address. Applying Scrub to its own output is a
// no-op as long as the text contains no further matches.
func Scrub(text string) string {
	out := scrubNames(text)
	out = ssnPattern.ReplaceAllString(out, SSNPlaceholder)
	out = phonePattern.ReplaceAllString(out, PhonePlaceholder)
	out = emailPattern.ReplaceAllString(out, EmailPlaceholder)
	out = addressPattern.ReplaceAllString(out, AddressPlaceholder)
	return out
}

// scrubNames replaces runs of two or more capitalized words. A run that
// opens a sentence keeps its leading word when a name-like remainder is left
// ("Contact John Smith" -> "Contact [NAME]"); runs ending in a street
// suffix are skipped entirely.
func scrubNames(text string) string {
	matches := nameRunPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(text[last:start])

		run := text[start:end]
		words := strings.Fields(run)
		lastWord := words[len(words)-1]
		if _, isStreet := streetSuffixes[lastWord]; isStreet {
			b.WriteString(run)
		} else if atSentenceStart(text, start) && len(words) >= 3 {
			b.WriteString(words[0])
			b.WriteString(" ")
			b.WriteString(NamePlaceholder)
		} else {
			b.WriteString(NamePlaceholder)
		}
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

func atSentenceStart(text string, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch text[i] {
		case ' ', '\t':
			continue
		case '.', '!', '?', '\n', '\r':
			return true
		default:
			return false
		}
	}
	return true
}
