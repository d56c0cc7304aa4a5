package bst

import (
	"sync"
)

// Wraps a Tree with a single mutex, held for the duration of every operation.
type SyncTree[T any] struct {
	lk   sync.Mutex
	tree *Tree[T]
}

func NewSyncTree[T any](t *Tree[T]) *SyncTree[T] {
	return &SyncTree[T]{tree: t}
}

func (s *SyncTree[T]) Add(val T) bool {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.tree.Add(val)
}

func (s *SyncTree[T]) Contains(val T) bool {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.tree.Contains(val)
}

func (s *SyncTree[T]) Remove(val T) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.tree.Remove(val)
}

func (s *SyncTree[T]) Min() (T, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.tree.Min()
}

func (s *SyncTree[T]) Max() (T, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.tree.Max()
}

func (s *SyncTree[T]) Len() int {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.tree.Len()
}

// Runs `fn` with exclusive access to the underlying tree. Nodes must not be retained after `fn` returns.
func (s *SyncTree[T]) View(fn func(t *Tree[T]) error) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	return fn(s.tree)
}
