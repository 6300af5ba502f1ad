package vtt

import (
	"testing"

	"github.com/matryer/is"
)

func TestActiveSetEarliestEndAndEviction(t *testing.T) {
	is := is.New(t)

	s := newActiveSet()
	s.insert(&activeEntry{end: 3000, arrival: 0})
	s.insert(&activeEntry{end: 1000, arrival: 1})
	s.insert(&activeEntry{end: 2000, arrival: 2})

	is.Equal(s.len(), 3)
	is.Equal(s.earliestEnd(), uint64(1000))

	evicted := s.popAllEndingAtOrBefore(1000)
	is.Equal(len(evicted), 1)
	is.Equal(evicted[0].arrival, uint64(1))
	is.Equal(s.len(), 2)
	is.Equal(s.earliestEnd(), uint64(2000))
}

func TestActiveSetTiesEvictedTogether(t *testing.T) {
	is := is.New(t)

	s := newActiveSet()
	s.insert(&activeEntry{end: 2000, arrival: 0})
	s.insert(&activeEntry{end: 2000, arrival: 1})
	s.insert(&activeEntry{end: 5000, arrival: 2})

	evicted := s.popAllEndingAtOrBefore(s.earliestEnd())
	is.Equal(len(evicted), 2) // both entries sharing end=2000 evicted in one step
	is.Equal(s.len(), 1)
}

func TestActiveSetArrivalOrderSurvivesEviction(t *testing.T) {
	is := is.New(t)

	s := newActiveSet()
	a := &activeEntry{end: 5000, arrival: 0}
	b := &activeEntry{end: 1000, arrival: 1}
	c := &activeEntry{end: 3000, arrival: 2}
	s.insert(a)
	s.insert(b)
	s.insert(c)

	order := s.iterateInArrivalOrder()
	is.Equal(len(order), 3)
	is.Equal(order[0].arrival, uint64(0))
	is.Equal(order[1].arrival, uint64(1))
	is.Equal(order[2].arrival, uint64(2))

	s.popAllEndingAtOrBefore(s.earliestEnd()) // evicts b (arrival 1)

	order = s.iterateInArrivalOrder()
	is.Equal(len(order), 2)
	is.Equal(order[0].arrival, uint64(0))
	is.Equal(order[1].arrival, uint64(2))
}
