package distance

import (
	"testing"

	"github.com/san-kum/cosmocalc/internal/cosmology"
)

func BenchmarkLuminosity(b *testing.B) {
	d := New(newCosmology(b, 70, 0.27, 0.73, 0.044))
	z := cosmology.MustRedshift(2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Luminosity(z)
	}
}

func BenchmarkLuminosityParallel(b *testing.B) {
	d := New(newCosmology(b, 70, 0.27, 0.73, 0.044), WithWorkers(4))
	z := cosmology.MustRedshift(2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Luminosity(z)
	}
}

func BenchmarkLuminosityMemo(b *testing.B) {
	d := New(newCosmology(b, 70, 0.27, 0.73, 0.044), WithMemo())
	z := cosmology.MustRedshift(2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Luminosity(z)
	}
}
