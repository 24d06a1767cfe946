package scan

import "testing"

func TestKind_NamesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKind(%q) = %v,%v, want %v", k.String(), got, ok, k)
		}
	}
	if _, ok := ParseKind("nonsense"); ok {
		t.Fatalf("ParseKind accepted an unknown name")
	}
}

func TestKind_Wire(t *testing.T) {
	b, err := KindPassiveVoice.MarshalText()
	if err != nil || string(b) != "passive_voice" {
		t.Fatalf("MarshalText = %q,%v", b, err)
	}

	var k Kind
	if err := k.UnmarshalText([]byte("cinnamon_words")); err != nil || k != KindCinnamonWords {
		t.Fatalf("UnmarshalText = %v,%v, want cinnamon_words", k, err)
	}
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Fatalf("UnmarshalText accepted an unknown name")
	}
}

func TestKind_LabelAndColor(t *testing.T) {
	if got := KindAdjectivesAdverbs.Label(); got != "Adjectives/Adverbs" {
		t.Fatalf("Label = %q", got)
	}
	if got := KindPassiveVoice.Color(); got != "#FFC800" {
		t.Fatalf("Color = %q", got)
	}
	bad := Kind(200)
	if bad.String() != "unknown" || bad.Label() != "Unknown" || bad.Color() != "#FFFFFF" {
		t.Fatalf("out of range kind: %q %q %q", bad.String(), bad.Label(), bad.Color())
	}
}

func TestConfig_Toggles(t *testing.T) {
	c := NewConfig()
	for _, k := range Kinds() {
		if !c.Enabled(k) {
			t.Fatalf("%v should default enabled", k)
		}
	}

	c.SetEnabled(KindJargon, false)
	if c.Enabled(KindJargon) {
		t.Fatalf("SetEnabled(false) did not stick")
	}

	c.SetEnabledName("jargon", true)
	if !c.Enabled(KindJargon) {
		t.Fatalf("SetEnabledName(true) did not stick")
	}

	// unknown names are silently ignored
	c.SetEnabledName("made_up_pass", false)
	snap := c.Snapshot()
	if len(snap) != len(Kinds()) {
		t.Fatalf("Snapshot has %d entries, want %d", len(snap), len(Kinds()))
	}
	for name, on := range snap {
		if !on {
			t.Fatalf("Snapshot[%q] = false, want all true", name)
		}
	}
}

func TestOffsetMap(t *testing.T) {
	om := newOffsetMap("aé漢b")
	// bytes: a=0, é=1..2, 漢=3..5, b=6
	cases := []struct{ b, want int }{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {5, 2}, {6, 3}, {7, 4},
	}
	for _, c := range cases {
		if got := om.Rune(c.b); got != c.want {
			t.Fatalf("Rune(%d) = %d, want %d", c.b, got, c.want)
		}
	}
	if om.Rune(-1) != 0 {
		t.Fatalf("Rune(-1) should clamp to 0")
	}
	if om.Rune(100) != 4 {
		t.Fatalf("Rune past end should clamp to rune length")
	}
}
