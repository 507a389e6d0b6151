package roadmap_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/ItamiOfficial/BytesPathfinder/roadmap"
)

func benchRoadmap(b *testing.B, samples int) *roadmap.Roadmap {
	b.Helper()
	cfg := roadmap.Config{
		Samples: samples,
		Radius:  60,
		Seed:    42,
		Bounds:  roadmap.Bounds{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000},
	}
	r, err := roadmap.Build(cfg)
	if err != nil {
		b.Fatal(err)
	}
	return r
}

func BenchmarkBuild(b *testing.B) {
	cfg := roadmap.Config{
		Samples: 512,
		Radius:  60,
		Seed:    42,
		Bounds:  roadmap.Bounds{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := roadmap.Build(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNearest(b *testing.B) {
	r := benchRoadmap(b, 2000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Nearest(orb.Point{float64(i % 1000), float64((i * 7) % 1000)})
	}
}

func BenchmarkWithin(b *testing.B) {
	r := benchRoadmap(b, 2000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := orb.Point{float64(i % 900), float64((i * 3) % 900)}
		r.Within(lo, orb.Point{lo[0] + 100, lo[1] + 100})
	}
}
