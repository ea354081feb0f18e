package kvstore

import (
	"context"
	"time"
)

// Instrumented wraps a Store and reports each operation's latency to an
// observer callback. The callback keeps this package free of a metrics
// dependency; the caller wires it to its collector.
type Instrumented struct {
	next    Store
	observe func(operation string, duration time.Duration)
}

// NewInstrumented decorates next with per-operation latency reporting. A nil
// observer returns next unwrapped.
func NewInstrumented(next Store, observe func(operation string, duration time.Duration)) Store {
	if observe == nil {
		return next
	}
	return &Instrumented{next: next, observe: observe}
}

func (s *Instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	value, ok, err := s.next.Get(ctx, key)
	s.observe("get", time.Since(start))
	return value, ok, err
}

func (s *Instrumented) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe("set", time.Since(start))
	return err
}

func (s *Instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.observe("delete", time.Since(start))
	return err
}

func (s *Instrumented) Clear(ctx context.Context) error {
	start := time.Now()
	err := s.next.Clear(ctx)
	s.observe("clear", time.Since(start))
	return err
}
