//go:build bench
// +build bench

package png

import (
	"bytes"
	"testing"
)

func benchImage(idatSize int) []byte {
	return buildImage(ColorTruecolor, NewChunk(TagImageData, bytes.Repeat([]byte{0x5A}, idatSize)))
}

func BenchmarkParse(b *testing.B) {
	benchmarks := []struct {
		name string
		data []byte
	}{
		{"small", benchImage(64)},
		{"medium", benchImage(64 << 10)},
		{"large", benchImage(4 << 20)},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(bm.data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Parse(bm.data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkExport(b *testing.B) {
	benchmarks := []struct {
		name string
		data []byte
	}{
		{"small", benchImage(64)},
		{"medium", benchImage(64 << 10)},
		{"large", benchImage(4 << 20)},
	}

	for _, bm := range benchmarks {
		img, err := Parse(bm.data)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(bm.data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := img.Export(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
