package stack

import "testing"

func generateFrames(n int) []frame {
	data := make([]frame, n)
	for i := 0; i < n; i++ {
		data[i] = frame{node: uint32(i), depth: i % 32}
	}
	return data
}

func BenchmarkPush(b *testing.B) {
	data := generateFrames(10000)
	s := NewStack[frame]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, v := range data {
			_, _ = s.Push(v)
		}
	}
}

func BenchmarkPop(b *testing.B) {
	data := generateFrames(10000)
	s := NewStack[frame]()
	for _, v := range data {
		_, _ = s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < len(data); j++ {
			_, _ = s.Pop()
		}
	}
}

func BenchmarkPeek(b *testing.B) {
	data := generateFrames(10000)
	s := NewStack[frame]()
	for _, v := range data {
		_, _ = s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.Peek()
	}
}

// BenchmarkPushPopWithReset models search.go's pooled frame stack: a
// stack is drained completely and Reset, rather than reallocated,
// once per simulated walk.
func BenchmarkPushPopWithReset(b *testing.B) {
	data := generateFrames(10000)
	s := NewStack[frame]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, v := range data {
			_, _ = s.Push(v)
		}
		for !s.IsEmpty() {
			_, _ = s.Pop()
		}
		s.Reset()
	}
}

func BenchmarkPushParallel(b *testing.B) {
	data := generateFrames(10000)
	s := NewStack[frame]()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = s.Push(data[i%len(data)])
			i++
		}
	})
}

func BenchmarkPopParallel(b *testing.B) {
	data := generateFrames(10000)
	s := NewStack[frame]()
	for _, v := range data {
		_, _ = s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = s.Pop()
		}
	})
}

func BenchmarkPeekParallel(b *testing.B) {
	data := generateFrames(10000)
	s := NewStack[frame]()
	for _, v := range data {
		_, _ = s.Push(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = s.Peek()
		}
	})
}

func BenchmarkPushLarge(b *testing.B) {
	data := generateFrames(100000)
	s := NewStack[frame]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, v := range data {
			_, _ = s.Push(v)
		}
	}
}
