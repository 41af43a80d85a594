package urplit

import "testing"

func TestFindTexture(t *testing.T) {
	candidates := []TextureRef{
		{Name: "Rock_DIFF", Path: "assets/Rock_DIFF.png"},
		{Name: "Rock_MS", Path: "assets/Rock_MS.png"},
		{Name: "rock_norm", Path: "assets/rock_norm.png"},
		{Name: "Rock_DIFF_old", Path: "assets/Rock_DIFF_old.png"},
	}

	tests := []struct {
		name      string
		aliases   []string
		prefix    string
		want      string
		wantFound bool
	}{
		{
			name:      "exact_match",
			aliases:   []string{"_MetallicSmoothness", "_MS"},
			prefix:    "Rock",
			want:      "Rock_MS",
			wantFound: true,
		},
		{
			name:      "case_insensitive",
			aliases:   []string{"_NORM"},
			prefix:    "Rock",
			want:      "rock_norm",
			wantFound: true,
		},
		{
			name:      "no_substring_match",
			aliases:   []string{"_DI"},
			prefix:    "Rock",
			wantFound: false,
		},
		{
			name:      "no_match",
			aliases:   []string{"_AO", "_OCC"},
			prefix:    "Rock",
			wantFound: false,
		},
		{
			name:      "wrong_prefix",
			aliases:   []string{"_DIFF"},
			prefix:    "Floor",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindTexture(candidates, tt.aliases, tt.prefix)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && got.Name != tt.want {
				t.Fatalf("match = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestFindTextureAliasPriority(t *testing.T) {
	// Both aliases have a candidate; the earlier alias must win even though
	// its candidate comes later in enumeration order.
	candidates := []TextureRef{
		{Name: "Crate_MS"},
		{Name: "Crate_MetallicSmoothness"},
	}
	got, found := FindTexture(candidates, []string{"_MetallicSmoothness", "_MS"}, "Crate")
	if !found || got.Name != "Crate_MetallicSmoothness" {
		t.Fatalf("expected alias priority to win, got %q (found=%v)", got.Name, found)
	}
}
