package cart

import "testing"

func TestNormalizeFragment(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"No Onion", "no-onion"},
		{"  extra   SAUCE \t please ", "extra-sauce-please"},
		{"already-hyphenated", "already-hyphenated"},
	}
	for _, tc := range cases {
		if got := normalizeFragment(tc.in); got != tc.want {
			t.Fatalf("normalizeFragment(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLineIDIgnoresCaseAndWhitespaceInNotes(t *testing.T) {
	a := productLineID(1, "No Onion", nil)
	b := productLineID(1, "no   onion", nil)
	if a != b {
		t.Fatalf("note normalization differs: %q vs %q", a, b)
	}
}

func TestLineIDEmptyFragmentsContributeNothing(t *testing.T) {
	bare := productLineID(1, "", nil)
	if bare != productLineID(1, "   ", []string{}) {
		t.Fatalf("blank notes / empty customizations must not change the id")
	}
	if bare == productLineID(1, "x", nil) {
		t.Fatalf("notes must change the id")
	}
}

func TestLineIDCustomizationOrderMatters(t *testing.T) {
	a := productLineID(1, "", []string{"no onion", "extra sauce"})
	b := productLineID(1, "", []string{"extra sauce", "no onion"})
	if a == b {
		t.Fatalf("customizations are an ordered sequence, ids must differ")
	}
}

// Hyphen collapse inside one fragment is part of the normalization itself:
// "a b" and "a-b" are the same customization. Pinned so nobody "fixes" it.
func TestLineIDHyphenCollapseCollision(t *testing.T) {
	a := productLineID(1, "", []string{"a b"})
	b := productLineID(1, "", []string{"a-b"})
	if a != b {
		t.Fatalf("expected %q and %q to collide", a, b)
	}
}

// The list boundary must survive the encoding: one two-part customization is
// not the same as two one-part customizations.
func TestLineIDListBoundaryDistinct(t *testing.T) {
	a := productLineID(1, "", []string{"a-b"})
	b := productLineID(1, "", []string{"a", "b"})
	if a == b {
		t.Fatalf("list boundary lost in the id encoding: %q", a)
	}
}

func TestLineIDKindsAreDisjoint(t *testing.T) {
	// a product and a combo sharing a catalog id must never collide
	if productLineID(7, "", nil) == comboLineID(7, "", nil) {
		t.Fatalf("product and combo ids collide")
	}
	if productLineID(7, "", nil) == variantLineID(7, 0, "", nil) {
		t.Fatalf("product and variant ids collide")
	}
}

func TestVariantLineIDIncludesBothIDs(t *testing.T) {
	a := variantLineID(2, 9, "", nil)
	b := variantLineID(2, 10, "", nil)
	c := variantLineID(3, 9, "", nil)
	if a == b || a == c {
		t.Fatalf("variant id must key on both product and variant: %q %q %q", a, b, c)
	}
}
