package suggest

import "testing"

func TestClosest(t *testing.T) {
	candidates := []string{"region", "url", "email", "identifier", "table-cell"}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"regoin", "region", true},
		{"URL", "url", true},
		{"emial", "email", true},
		{"identifer", "identifier", true},
		{"xyzzy", "", false},
		{"tablecell", "table-cell", true},
	}

	for _, tt := range tests {
		got, ok := Closest(tt.name, candidates)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("Closest(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestHint(t *testing.T) {
	if got := Hint("regoin", []string{"region"}); got != ` (did you mean "region"?)` {
		t.Errorf("Hint() = %q", got)
	}
	if got := Hint("zzz", []string{"region"}); got != "" {
		t.Errorf("Hint() = %q, want empty", got)
	}
	if got := Hint("a", nil); got != "" {
		t.Errorf("Hint() with no candidates = %q, want empty", got)
	}
}
