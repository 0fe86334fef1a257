package app_test

import (
	"context"
	"encoding/json"
	"sync"
)

// fakeStore is an in-memory domain.Store with write counters, so tests can
// assert "no storage write happened".
type fakeStore struct {
	mu   sync.Mutex
	data map[string][]byte
	subs map[string][]chan struct{}

	sets int
	dels int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}, subs: map[string][]chan struct{}{}}
}

func (f *fakeStore) Get(_ context.Context, key string, dst any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil // corrupt reads as absent, like the real store
	}
	return true, nil
}

func (f *fakeStore) Set(_ context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.data[key] = b
	f.sets++
	f.mu.Unlock()
	f.notify(key)
	return nil
}

func (f *fakeStore) Del(_ context.Context, key string) error {
	f.mu.Lock()
	delete(f.data, key)
	f.dels++
	f.mu.Unlock()
	f.notify(key)
	return nil
}

func (f *fakeStore) Watch(_ context.Context, key string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	f.mu.Lock()
	f.subs[key] = append(f.subs[key], ch)
	f.mu.Unlock()
	return ch, func() {}
}

func (f *fakeStore) notify(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs[key] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (f *fakeStore) writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets + f.dels
}

// corrupt plants a non-JSON payload under key.
func (f *fakeStore) corrupt(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = []byte("{definitely not json")
}
