package strings

import (
	"testing"

	kit "honest/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"x", "y"}
	if got := IfEmpty(in, def); len(got) != 2 {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("value", "name"); got != "value" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = MustString("   ", "name") })
}

func TestMustPrefix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"check", "/check"},
		{"/check", "/check"},
		{" /session/ ", "/session"},
		{"//a/b/", "/a/b"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	kit.MustPanic(t, func() { _ = MustPrefix("  ") })
	kit.MustPanic(t, func() { _ = MustPrefix("/") })
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("Truncate = %q", got)
	}
	// rune-safe on multi-byte text
	if got := Truncate("héllo wörld", 6); got != "héllo…" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("ab", 1); got != "a" {
		t.Fatalf("Truncate n=1 = %q", got)
	}
}

func TestDeref(t *testing.T) {
	if got := Deref(nil); got != "" {
		t.Fatalf("Deref(nil) = %q", got)
	}
	s := "v"
	if got := Deref(&s); got != "v" {
		t.Fatalf("Deref = %q", got)
	}
}
