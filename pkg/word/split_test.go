package word

import "testing"

func TestSplitGenerators(t *testing.T) {
	tests := []struct {
		in          string
		swap        bool
		left, right string
	}{
		{"", false, "", ""},
		{"a", true, "", ""},
		{"b", false, "c", "a"},
		{"c", false, "d", "a"},
		{"d", false, "b", ""},
		{"ab", true, "a", "c"},
		{"ad", true, "", "b"},
		{"aba", false, "a", "c"},
		{"bab", true, "ca", "ac"},
		{"bb", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sp := Split(MustParse(tt.in))
			if sp.Swap != tt.swap || sp.Left.String() != tt.left || sp.Right.String() != tt.right {
				t.Errorf("Split(%q) = (%v, %q, %q), want (%v, %q, %q)",
					tt.in, sp.Swap, sp.Left, sp.Right, tt.swap, tt.left, tt.right)
			}
		})
	}
}

func TestSplitShrinks(t *testing.T) {
	for _, w := range allWords(6) {
		r := Reduce(w)
		if len(r) < 2 {
			continue
		}
		sp := Split(r)
		if len(sp.Left) >= len(r) || len(sp.Right) >= len(r) {
			t.Fatalf("Split(%q) = (%q, %q) did not shrink", r, sp.Left, sp.Right)
		}
	}
}

func TestSplitAligned(t *testing.T) {
	swap, left, right := SplitAligned(MustParse("abad"))
	if swap {
		t.Error("abad should not swap")
	}
	if left != "-a-b" || right != "-c--" {
		t.Errorf("SplitAligned(abad) = (%q, %q), want (%q, %q)", left, right, "-a-b", "-c--")
	}
	if len(left) != 4 || len(right) != 4 {
		t.Error("aligned halves must match the input length")
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "I"},
		{"aa", "I"},
		{"d", "d"},
		{"a", "a(I,I)"},
		{"c", "(d,a(I,I))"},
		{"b", "((d,a(I,I)),a(I,I))"},
		{"ad", "a(I,((d,a(I,I)),a(I,I)))"},
	}
	for _, tt := range tests {
		if got := Encode(MustParse(tt.in)); got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
