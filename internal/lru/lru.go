// Copyright 2024 The PGDL Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lru

import (
	"container/list"
	"sync"
)

// Cache implements an LRU cache. It is safe for concurrent use.
type Cache[V any] struct {
	mu       sync.Mutex
	cache    map[string]*list.Element
	priority *list.List
	maxSize  int
}

type entry[V any] struct {
	key   string
	value V
}

// New returns a cache holding at most size entries.
func New[V any](size int) *Cache[V] {
	return &Cache[V]{
		maxSize:  size,
		priority: list.New(),
		cache:    make(map[string]*list.Element),
	}
}

// Put stores a value, replacing the previous value of key and evicting the
// least recently used entry when the cache is full.
func (lru *Cache[V]) Put(key string, value V) {
	if lru.maxSize <= 0 {
		return
	}
	lru.mu.Lock()
	defer lru.mu.Unlock()
	if e, ok := lru.cache[key]; ok {
		e.Value = entry[V]{key: key, value: value}
		lru.priority.MoveToFront(e)
		return
	}
	if len(lru.cache) >= lru.maxSize {
		last := lru.priority.Remove(lru.priority.Back())
		delete(lru.cache, last.(entry[V]).key)
	}
	lru.cache[key] = lru.priority.PushFront(entry[V]{key: key, value: value})
}

func (lru *Cache[V]) Del(key string) {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	e := lru.cache[key]
	if e == nil {
		return
	}
	delete(lru.cache, key)
	lru.priority.Remove(e)
}

func (lru *Cache[V]) Get(key string) (V, bool) {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	if e, ok := lru.cache[key]; ok {
		lru.priority.MoveToFront(e)
		return e.Value.(entry[V]).value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of cached entries.
func (lru *Cache[V]) Len() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return len(lru.cache)
}
