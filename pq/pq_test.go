package pq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/wgraph/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name     string
	priority float64
}

func byPriority(a, b item) bool { return a.priority < b.priority }

func TestQueue_Order(t *testing.T) {
	q := pq.New(byPriority)
	for _, it := range []item{{"banana", 3}, {"apple", 2}, {"pear", 4}, {"orange", 1}} {
		q.Push(it)
	}
	require.Equal(t, 4, q.Len())

	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "orange", top.name)
	assert.Equal(t, 4, q.Len(), "Peek must not remove")

	var got []string
	for q.Len() > 0 {
		it, ok := q.Pop()
		require.True(t, ok)
		got = append(got, it.name)
	}
	assert.Equal(t, []string{"orange", "apple", "banana", "pear"}, got)
}

func TestQueue_StableTies(t *testing.T) {
	q := pq.New(byPriority)
	q.Push(item{"a", 1})
	q.Push(item{"b", 0})
	q.Push(item{"c", 1})
	q.Push(item{"d", 0})
	q.Push(item{"e", 1})

	var got []string
	for {
		it, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, it.name)
	}
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, got)
}

func TestQueue_Empty(t *testing.T) {
	q := pq.New(func(a, b int) bool { return a < b })

	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
	assert.Zero(t, q.Len())
}

func TestQueue_RandomMatchesSort(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q := pq.New(func(a, b int) bool { return a < b })

	want := make([]int, 500)
	for i := range want {
		want[i] = r.Intn(50)
		q.Push(want[i])
	}
	sort.Ints(want)

	got := make([]int, 0, len(want))
	for q.Len() > 0 {
		x, _ := q.Pop()
		got = append(got, x)
	}
	assert.Equal(t, want, got)
}
