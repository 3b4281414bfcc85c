package leftist_test

import (
	"math/rand"
	"testing"

	"github.com/auyeungtsun/leftist-tree/pkg/leftist"
)

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	h := leftist.NewHeap()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Insert(rng.Int())
	}
}

func BenchmarkInsertExtract(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	h := leftist.NewHeap()
	for i := 0; i < 1024; i++ {
		h.Insert(rng.Int())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Insert(rng.Int())
		if _, err := h.ExtractMin(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMergeWith(b *testing.B) {
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h1 := leftist.NewHeap()
		h2 := leftist.NewHeap()
		for j := 0; j < 1024; j++ {
			h1.Insert(rng.Int())
			h2.Insert(rng.Int())
		}
		b.StartTimer()

		h1.MergeWith(h2)
	}
}
