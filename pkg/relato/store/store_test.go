package store

import "testing"

func TestPatternMatchesExact(t *testing.T) {
	p := Exact("john", "mary")

	if !p.Matches([]string{"john", "mary"}) {
		t.Error("exact pattern should match identical args")
	}
	if p.Matches([]string{"john", "susan"}) {
		t.Error("exact pattern should not match different args")
	}
}

func TestPatternMatchesWildcard(t *testing.T) {
	p := Pattern{Wildcard, "mary"}

	if !p.Matches([]string{"john", "mary"}) {
		t.Error("wildcard should match any value at its position")
	}
	if !p.Matches([]string{"susan", "mary"}) {
		t.Error("wildcard should match any value at its position")
	}
	if p.Matches([]string{"john", "tom"}) {
		t.Error("literal position must still match")
	}
}

func TestPatternMatchesCaseInsensitive(t *testing.T) {
	p := Pattern{"JOHN", "mary"}

	if !p.Matches([]string{"john", "MARY"}) {
		t.Error("literal comparison should be case-insensitive")
	}
}

func TestPatternLengthGatesMatch(t *testing.T) {
	p := Pattern{Wildcard, Wildcard}

	if p.Matches([]string{"john"}) {
		t.Error("pattern length must equal argument count")
	}
	if p.Matches([]string{"john", "mary", "susan"}) {
		t.Error("pattern length must equal argument count")
	}
}

func TestPatternEmpty(t *testing.T) {
	p := Pattern{}

	if !p.Matches(nil) {
		t.Error("empty pattern should match zero-argument facts")
	}
	if p.Matches([]string{"john"}) {
		t.Error("empty pattern should not match non-empty args")
	}
}
