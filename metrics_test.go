package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetric(t *testing.T) {
	var m Metric
	assert.Equal(t, 0.0, m.Avg())
	m.Add(1)
	m.Add(2)
	m.Add(6)
	assert.Equal(t, 3, m.Count)
	assert.Equal(t, 9.0, m.Sum)
	assert.Equal(t, 3.0, m.Avg())
}

func TestAccumulator(t *testing.T) {
	acc := NewAccumulator()
	assert.Equal(t, 0, acc.Len())
	assert.Empty(t, acc.Averages(OrderFirstSeen))

	acc.Record("b", 5)
	acc.Record("a", 10)
	acc.Record("b", 15)
	acc.Record("a", 20)
	acc.Record("c", -1)

	assert.Equal(t, 3, acc.Len())
	assert.Equal(t, []string{"b", "a", "c"}, acc.Keys())

	m, ok := acc.Get("a")
	assert.True(t, ok)
	assert.Equal(t, Metric{Count: 2, Sum: 30}, m)
	_, ok = acc.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []Average{{"b", 10}, {"a", 15}, {"c", -1}}, acc.Averages(OrderFirstSeen))
	assert.Equal(t, []Average{{"a", 15}, {"b", 10}, {"c", -1}}, acc.Averages(OrderSorted))
}

func TestAccumulatorKeysCopy(t *testing.T) {
	acc := NewAccumulator()
	acc.Record("x", 1)
	keys := acc.Keys()
	keys[0] = "y"
	assert.Equal(t, []string{"x"}, acc.Keys())
}
