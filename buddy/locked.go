/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package buddy

import "sync"

// Locked is an Allocator guarded by a mutex. Every method holds the lock for
// the whole operation, so it may be shared between goroutines.
type Locked struct {
	mu sync.Mutex
	a  *Allocator
}

// NewLocked creates a Locked allocator, see New.
func NewLocked(capacity int) (*Locked, error) {
	a, err := New(capacity)
	if err != nil {
		return nil, err
	}
	return &Locked{a: a}, nil
}

// Capacity returns the total number of addresses managed.
func (l *Locked) Capacity() int {
	// immutable after New
	return l.a.Capacity()
}

// Alloc is the locked version of Allocator.Alloc.
func (l *Locked) Alloc(size int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Alloc(size)
}

// Free is the locked version of Allocator.Free.
func (l *Locked) Free(addr int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Free(addr)
}

// BlockSize is the locked version of Allocator.BlockSize.
func (l *Locked) BlockSize(addr int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.BlockSize(addr)
}

func (l *Locked) Available() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Available()
}

func (l *Locked) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Stats()
}

func (l *Locked) Reset() {
	l.mu.Lock()
	l.a.Reset()
	l.mu.Unlock()
}
