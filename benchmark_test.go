package urplit

import (
	"fmt"
	"testing"
)

func BenchmarkInferPrefix(b *testing.B) {
	names := make([]string, 0, 64)
	for i := 0; i < 16; i++ {
		names = append(names,
			fmt.Sprintf("Wall_%02d_DIFF", i),
			fmt.Sprintf("Wall_%02d_NORM", i),
			fmt.Sprintf("Floor_%02d_DIFF", i),
			fmt.Sprintf("Floor_%02d_AO", i),
		)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := InferPrefix(names); !ok {
			b.Fatalf("expected a prefix")
		}
	}
}

func BenchmarkFindTexture(b *testing.B) {
	candidates := make([]TextureRef, 0, 256)
	for i := 0; i < 256; i++ {
		candidates = append(candidates, TextureRef{Name: fmt.Sprintf("Asset_%03d_DIFF", i)})
	}
	candidates[200].Name = "Rock_MS"
	aliases := DefaultAliases().Metallic
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := FindTexture(candidates, aliases, "Rock"); !ok {
			b.Fatalf("expected a match")
		}
	}
}
