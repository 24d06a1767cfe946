package raw

import "testing"

func TestGet(t *testing.T) {
	c := New().Prefix("LOG_")
	if got := c.Get("LEVEL", "debug"); got != "debug" {
		t.Fatalf("Get default = %q", got)
	}
	t.Setenv("LOG_LEVEL", " info ")
	if got := c.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("Get value = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("F_")
	if got := c.GetBool("MISSING", true); !got {
		t.Fatalf("GetBool default = %v", got)
	}
	for _, v := range []string{"true", "1", "yes"} {
		t.Setenv("F_CALLER", v)
		if got := c.GetBool("CALLER", false); !got {
			t.Fatalf("GetBool(%q) = %v, want true", v, got)
		}
	}
	// anything else reads as false
	t.Setenv("F_BAD", "nope")
	if got := c.GetBool("BAD", true); got {
		t.Fatalf("GetBool invalid = %v, want false", got)
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("N_")
	if got := c.GetInt("MISSING", 7); got != 7 {
		t.Fatalf("GetInt default = %d", got)
	}
	t.Setenv("N_COUNT", "42")
	if got := c.GetInt("COUNT", 7); got != 42 {
		t.Fatalf("GetInt value = %d", got)
	}
	t.Setenv("N_BAD", "x")
	if got := c.GetInt("BAD", 7); got != 7 {
		t.Fatalf("GetInt invalid = %d, want default", got)
	}
}
