package script

import (
	"fmt"
	"regexp"
	"strings"

	"timewalker/internal/twerr"
)

// Condition is a disjunction of predicates evaluated against decoded
// buffer text. At least one of Contains/Regex/Predicate must be set.
// Predicate is only usable via programmatic construction — scenario JSON
// can only express Contains/Regex, per the host's restriction on
// persisting function values.
type Condition struct {
	Contains  string
	Regex     string
	Predicate func(string) bool

	compiled *regexp.Regexp
}

// NewCondition validates and compiles cond. A regex, if present, must be
// syntactically valid at construction time.
func NewCondition(contains, regex string, predicate func(string) bool) (Condition, error) {
	c := Condition{Contains: contains, Regex: regex, Predicate: predicate}
	if contains == "" && regex == "" && predicate == nil {
		return Condition{}, fmt.Errorf("output condition: %w: at least one of contains/regex/predicate required", twerr.ErrInvalidArgument)
	}
	if regex != "" {
		re, err := regexp.Compile(regex)
		if err != nil {
			return Condition{}, fmt.Errorf("output condition: %w: invalid regex %q: %v", twerr.ErrInvalidArgument, regex, err)
		}
		c.compiled = re
	}
	return c, nil
}

// Matches reports whether any of the condition's predicates hold for text.
func (c Condition) Matches(text string) bool {
	if c.Contains != "" && strings.Contains(text, c.Contains) {
		return true
	}
	if c.compiled != nil && c.compiled.MatchString(text) {
		return true
	}
	if c.Predicate != nil && c.Predicate(text) {
		return true
	}
	return false
}

// String renders a diagnostic description of the condition, used in
// timeout error messages.
func (c Condition) String() string {
	var parts []string
	if c.Contains != "" {
		parts = append(parts, fmt.Sprintf("contains=%q", c.Contains))
	}
	if c.Regex != "" {
		parts = append(parts, fmt.Sprintf("regex=%q", c.Regex))
	}
	if c.Predicate != nil {
		parts = append(parts, "predicate=<func>")
	}
	return "Condition(" + strings.Join(parts, ", ") + ")"
}
