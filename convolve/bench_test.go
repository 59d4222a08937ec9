package convolve_test

import (
	"testing"

	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/convolve"
)

// benchmarkIterateSum runs IterateSum on a geometric input of length n under
// cfg, resetting the timer before entering the loop.
func benchmarkIterateSum(b *testing.B, n int, cfg backend.Config) {
	f := geometricInput(n, 0.3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convolve.IterateSum(cfg, f, nil, 0, nil, nil); err != nil {
			b.Fatalf("IterateSum failed: %v", err)
		}
	}
}

func BenchmarkIterateSum_FFTSmall(b *testing.B) {
	cfg := backend.DefaultConfig()
	benchmarkIterateSum(b, 256, cfg)
}

func BenchmarkIterateSum_FFTLarge(b *testing.B) {
	cfg := backend.DefaultConfig()
	benchmarkIterateSum(b, 4096, cfg)
}

func BenchmarkIterateSum_DirectSmall(b *testing.B) {
	cfg := backend.DefaultConfig()
	cfg.UseFFT = false
	benchmarkIterateSum(b, 256, cfg)
}

func BenchmarkIterateSum_DirectLarge(b *testing.B) {
	cfg := backend.DefaultConfig()
	cfg.UseFFT = false
	benchmarkIterateSum(b, 4096, cfg)
}
