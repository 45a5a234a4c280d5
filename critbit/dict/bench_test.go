package dict

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]int)
	)

	b.ResetTimer()

	for i, key := range keys {
		m[key] = i
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]int)
	)

	for i, key := range keys {
		m[key] = i
	}

	b.ResetTimer()

	for _, key := range keys {
		_ = m[key]
	}
}

func BenchmarkDict_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		dict = New[int]()
	)

	b.ResetTimer()

	for i, key := range keys {
		dict.Set(key, i)
	}
}

func BenchmarkDict_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		dict = New[int]()
	)

	for i, key := range keys {
		dict.Set(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = dict.Get(key)
	}
}

func BenchmarkDict_Iter(b *testing.B) {
	var (
		keys = getKeys(10_000)
		dict = New[int]()
	)

	for i, key := range keys {
		dict.Set(key, i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dict.Iter("", func(Item[int]) bool {
			return true
		})
	}
}

func getKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(4)
	}

	return keys
}
