/*
Package pattern implements the pattern language the search package
matches against a finalized trie: an ordered sequence of CharMatch
slots (each a literal codepoint, a wildcard, or a codepoint plus
alternatives), tagged with a match type that selects prefix, full-word,
fragment or suffix matching.
*/
package pattern

import (
	"strings"

	"github.com/Zubayear/chartrie/chartrieerr"
)

// MatchType selects which of the four search algorithms a PatternMatch drives.
type MatchType int

const (
	// IsPrefix matches words that begin with the pattern.
	IsPrefix MatchType = iota
	// IsFragment matches words that contain the pattern as a contiguous substring.
	IsFragment
	// IsWord matches words equal in length to, and satisfying, the whole pattern.
	IsWord
	// IsSuffix matches words that end with the pattern.
	IsSuffix
)

func (m MatchType) String() string {
	switch m {
	case IsPrefix:
		return "IsPrefix"
	case IsFragment:
		return "IsFragment"
	case IsWord:
		return "IsWord"
	case IsSuffix:
		return "IsSuffix"
	default:
		return "Unknown"
	}
}

// Status is the result of PatternMatch.Validate.
type Status int

const (
	// Valid means the pattern may be searched.
	Valid Status = iota
	// InvalidStartingWildCard means an IsFragment pattern starts with a wildcard.
	InvalidStartingWildCard
	// InvalidEndingWildCard means an IsFragment pattern ends with a wildcard.
	InvalidEndingWildCard
)

// CharMatch is a single pattern slot: either a wildcard (Primary ==
// nil, matching any codepoint) or a literal codepoint optionally
// widened by a set of accepted Alternatives.
type CharMatch struct {
	Primary      *rune
	Alternatives []rune
}

// Wildcard returns a CharMatch that matches any codepoint.
func Wildcard() CharMatch {
	return CharMatch{}
}

// Char returns a CharMatch matching primary, plus any alternatives.
func Char(primary rune, alternatives ...rune) CharMatch {
	p := primary
	return CharMatch{Primary: &p, Alternatives: alternatives}
}

// Matches reports whether c satisfies this slot.
func (m CharMatch) Matches(c rune) bool {
	if m.Primary == nil {
		return true
	}
	if *m.Primary == c {
		return true
	}
	for _, alt := range m.Alternatives {
		if alt == c {
			return true
		}
	}
	return false
}

// regexClass renders the slot as a regex fragment: "." for a
// wildcard, a literal character, or a bracket class when alternatives
// are present. This is a presentation aid only; search never executes it.
func (m CharMatch) regexClass() string {
	if m.Primary == nil {
		return "."
	}
	if len(m.Alternatives) == 0 {
		return string(*m.Primary)
	}
	var b strings.Builder
	b.WriteByte('[')
	b.WriteRune(*m.Primary)
	for _, alt := range m.Alternatives {
		b.WriteByte('|')
		b.WriteRune(alt)
	}
	b.WriteByte(']')
	return b.String()
}

// PatternMatch is an ordered sequence of CharMatch slots tagged with
// the search algorithm that should interpret them.
type PatternMatch struct {
	Items     []CharMatch
	MatchType MatchType

	validated bool
	status    Status
}

// New builds a PatternMatch from items and a match type.
func New(items []CharMatch, matchType MatchType) PatternMatch {
	return PatternMatch{Items: append([]CharMatch(nil), items...), MatchType: matchType}
}

// FromPrefix builds an IsPrefix pattern matching the literal string p
// character by character.
func FromPrefix(p string) PatternMatch {
	return literalPattern(p, IsPrefix)
}

// FromWord builds an IsWord pattern matching the literal string w
// character by character.
func FromWord(w string) PatternMatch {
	return literalPattern(w, IsWord)
}

// FromFragment builds an IsFragment pattern matching the literal
// string f character by character.
func FromFragment(f string) PatternMatch {
	return literalPattern(f, IsFragment)
}

// FromSuffix builds an IsSuffix pattern matching the literal string s
// character by character.
func FromSuffix(s string) PatternMatch {
	return literalPattern(s, IsSuffix)
}

func literalPattern(s string, mt MatchType) PatternMatch {
	items := make([]CharMatch, 0, len(s))
	for _, r := range s {
		items = append(items, Char(r))
	}
	return New(items, mt)
}

// Len returns the number of slots in the pattern.
func (p *PatternMatch) Len() int {
	return len(p.Items)
}

// Empty reports whether the pattern has no slots; an empty pattern
// always means "match every word", regardless of MatchType.
func (p *PatternMatch) Empty() bool {
	return len(p.Items) == 0
}

// SetItems replaces the pattern's slots, invalidating any cached
// validation result.
func (p *PatternMatch) SetItems(items []CharMatch) {
	p.Items = append([]CharMatch(nil), items...)
	p.validated = false
}

// SetMatchType replaces the pattern's match type, invalidating any
// cached validation result.
func (p *PatternMatch) SetMatchType(mt MatchType) {
	p.MatchType = mt
	p.validated = false
}

// Validate checks the pattern against the one validity rule the
// specification defines: an IsFragment pattern may not start or end
// with a wildcard (other match types, and other positions, allow
// wildcards freely). The result is cached until the pattern is
// mutated via SetItems/SetMatchType.
func (p *PatternMatch) Validate() (Status, error) {
	if p.validated {
		return p.status, statusError(p.status)
	}
	p.status = p.computeStatus()
	p.validated = true
	return p.status, statusError(p.status)
}

func (p *PatternMatch) computeStatus() Status {
	if p.MatchType != IsFragment || len(p.Items) == 0 {
		return Valid
	}
	if p.Items[0].Primary == nil {
		return InvalidStartingWildCard
	}
	if p.Items[len(p.Items)-1].Primary == nil {
		return InvalidEndingWildCard
	}
	return Valid
}

func statusError(s Status) error {
	switch s {
	case InvalidStartingWildCard:
		return chartrieerr.NewInvalidPattern(chartrieerr.ReasonStartingWildcard)
	case InvalidEndingWildCard:
		return chartrieerr.NewInvalidPattern(chartrieerr.ReasonEndingWildcard)
	default:
		return nil
	}
}

// ToRegex projects the pattern to an equivalent regex string. This is
// a convenience for callers that want to display or reuse the
// pattern elsewhere; the search package never executes it.
func (p *PatternMatch) ToRegex() string {
	var b strings.Builder
	for _, item := range p.Items {
		b.WriteString(item.regexClass())
	}
	body := b.String()
	switch p.MatchType {
	case IsPrefix:
		return body + ".*"
	case IsSuffix:
		return ".*" + body
	case IsFragment:
		return ".*" + body + ".*"
	default: // IsWord
		return body
	}
}
