package main

import "sort"

type Metric struct {
	Count int
	Sum   float64
}

func (m *Metric) Add(v float64) {
	m.Count++
	m.Sum += v
}

func (m *Metric) Avg() float64 {
	if m.Count == 0 {
		return 0
	}
	return m.Sum / float64(m.Count)
}

type Average struct {
	Key  string
	Mean float64
}

// Accumulator keeps a running Metric per key. Keys are remembered in the
// order they were first recorded.
type Accumulator struct {
	metrics map[string]*Metric
	order   []string
}

func NewAccumulator() *Accumulator {
	return &Accumulator{metrics: map[string]*Metric{}}
}

func (a *Accumulator) Record(key string, value float64) {
	m, ok := a.metrics[key]
	if !ok {
		m = &Metric{}
		a.metrics[key] = m
		a.order = append(a.order, key)
	}
	m.Add(value)
}

func (a *Accumulator) Len() int {
	return len(a.order)
}

func (a *Accumulator) Keys() []string {
	return append([]string(nil), a.order...)
}

func (a *Accumulator) Get(key string) (Metric, bool) {
	m, ok := a.metrics[key]
	if !ok {
		return Metric{}, false
	}
	return *m, true
}

// Averages computes the mean of every recorded key.
func (a *Accumulator) Averages(order Order) []Average {
	keys := a.Keys()
	if order == OrderSorted {
		sort.Strings(keys)
	}
	res := make([]Average, 0, len(keys))
	for _, k := range keys {
		res = append(res, Average{Key: k, Mean: a.metrics[k].Avg()})
	}
	return res
}
