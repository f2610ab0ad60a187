package list_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlist/alloc"
	"github.com/katalvlaran/lvlist/list"
)

func BenchmarkPushBack(b *testing.B) {
	l := list.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.PushBack(i)
	}
}

func BenchmarkPushPop_FreeList(b *testing.B) {
	for _, size := range []int{0, 32} {
		b.Run(map[int]string{0: "off", 32: "on"}[size], func(b *testing.B) {
			l := list.New[int](list.WithFreeListSize(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = l.PushBack(i)
				l.PopFront()
			}
		})
	}
}

func BenchmarkInsertN_Arena(b *testing.B) {
	arena := alloc.NewArena(1 << 30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := list.New[int](list.WithAllocator(arena))
		_, _ = l.InsertN(l.End(), 64, i)
		l.Clear()
	}
}

func BenchmarkSort(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	vals := make([]int, 1<<12)
	for i := range vals {
		vals[i] = rng.Int()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := list.Of(vals...)
		b.StartTimer()
		list.Sort(l)
	}
}

func BenchmarkSplice(b *testing.B) {
	a := list.Of(1, 2, 3)
	c := list.Of(4, 5, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Splice(a.End(), c)
		c.Splice(c.End(), a)
	}
}
