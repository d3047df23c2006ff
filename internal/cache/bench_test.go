package cache

import "testing"

func BenchmarkShardedGet(b *testing.B) {
	c := NewSharded[uint32, int](DefaultCapacity, Uint32Hasher)
	for i := range uint32(1000) {
		c.Set(i, int(i))
	}
	b.ResetTimer()
	var k uint32
	for b.Loop() {
		c.Get(k % 1000)
		k++
	}
}

func BenchmarkShardedGetOrCreateParallel(b *testing.B) {
	c := NewSharded[uint32, int](DefaultCapacity, Uint32Hasher)
	b.RunParallel(func(pb *testing.PB) {
		var k uint32
		for pb.Next() {
			c.GetOrCreate(k%512, func() int { return int(k) })
			k++
		}
	})
}
