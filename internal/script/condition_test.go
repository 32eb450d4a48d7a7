package script

import (
	"errors"
	"testing"

	"timewalker/internal/twerr"
)

func TestNewConditionRequiresAtLeastOneClause(t *testing.T) {
	_, err := NewCondition("", "", nil)
	if !errors.Is(err, twerr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewConditionRejectsInvalidRegex(t *testing.T) {
	_, err := NewCondition("", "(unclosed", nil)
	if !errors.Is(err, twerr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bad regex, got %v", err)
	}
}

func TestConditionMatchesContains(t *testing.T) {
	cond, err := NewCondition("world", "", nil)
	if err != nil {
		t.Fatalf("NewCondition: %v", err)
	}
	if !cond.Matches("hello world") {
		t.Fatal("expected match on contains")
	}
	if cond.Matches("hello there") {
		t.Fatal("expected no match")
	}
}

func TestConditionMatchesRegex(t *testing.T) {
	cond, err := NewCondition("", `\$\s*$`, nil)
	if err != nil {
		t.Fatalf("NewCondition: %v", err)
	}
	if !cond.Matches("user@host:~$ ") {
		t.Fatal("expected regex match on trailing prompt")
	}
	if cond.Matches("still running") {
		t.Fatal("expected no match")
	}
}

func TestConditionMatchesPredicate(t *testing.T) {
	cond, err := NewCondition("", "", func(s string) bool { return len(s) > 3 })
	if err != nil {
		t.Fatalf("NewCondition: %v", err)
	}
	if !cond.Matches("abcd") {
		t.Fatal("expected predicate match")
	}
	if cond.Matches("ab") {
		t.Fatal("expected no predicate match")
	}
}
