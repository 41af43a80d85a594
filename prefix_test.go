package urplit

import "testing"

func TestInferPrefix(t *testing.T) {
	tests := []struct {
		name   string
		names  []string
		want   string
		wantOK bool
	}{
		{
			name:   "largest_group_wins",
			names:  []string{"Wall_DIFF", "Wall_NORM", "Wall_AO", "Floor_DIFF"},
			want:   "Wall",
			wantOK: true,
		},
		{
			name:   "empty_input",
			names:  nil,
			wantOK: false,
		},
		{
			name:   "no_underscore",
			names:  []string{"abc"},
			want:   "abc",
			wantOK: true,
		},
		{
			name:   "last_underscore_splits",
			names:  []string{"Stone_Wall_DIFF", "Stone_Wall_NORM", "Stone_AO"},
			want:   "Stone_Wall",
			wantOK: true,
		},
		{
			name:   "tie_breaks_to_first_in_input_order",
			names:  []string{"Floor_DIFF", "Wall_DIFF", "Wall_NORM", "Floor_NORM"},
			want:   "Floor",
			wantOK: true,
		},
		{
			name:   "single_name",
			names:  []string{"Crate_NORM"},
			want:   "Crate",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InferPrefix(tt.names)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("prefix = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInferPrefixWinnerIsMaximal(t *testing.T) {
	names := []string{"A_1", "B_1", "A_2", "C_1", "A_3", "B_2"}
	got, ok := InferPrefix(names)
	if !ok {
		t.Fatalf("expected a prefix")
	}

	counts := map[string]int{}
	for _, n := range names {
		p, _ := SplitTextureName(n)
		counts[p]++
	}
	for p, n := range counts {
		if n > counts[got] {
			t.Fatalf("group %q (%d) larger than winner %q (%d)", p, n, got, counts[got])
		}
	}
}

func TestSplitTextureName(t *testing.T) {
	tests := []struct {
		in, prefix, suffix string
	}{
		{"Wall_DIFF", "Wall", "DIFF"},
		{"Stone_Wall_DIFF", "Stone_Wall", "DIFF"},
		{"abc", "abc", ""},
		{"_DIFF", "", "DIFF"},
		{"trailing_", "trailing", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		p, s := SplitTextureName(tt.in)
		if p != tt.prefix || s != tt.suffix {
			t.Fatalf("SplitTextureName(%q) = (%q, %q), want (%q, %q)", tt.in, p, s, tt.prefix, tt.suffix)
		}
	}
}
