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

package malloc

import (
	"errors"
	"log"
	"sync/atomic"
	"unsafe"

	"github.com/bytedance/gopkg/lang/mcache"

	"github.com/shagunarora/system-coding-concurrency-and-multithreading/buddy"
)

// ErrArenaClosed is returned by any Arena call made after Close.
var ErrArenaClosed = errors.New("malloc: arena closed")

// Arena hands out []byte blocks carved from a single slab.
// Block placement is managed by a buddy allocator, so every block is a power
// of two in size and starts at a multiple of its size within the slab.
//
// Alloc, Free, FreeAt, Offset, Available, Stats and Reset may be called
// concurrently. Close must not race with any other call.
type Arena struct {
	// slab is the underlying memory we are managing.
	slab []byte

	// slabStart is a cached pointer to the start of the slab.
	// Used for fast offset calculations in Free().
	slabStart unsafe.Pointer

	alloc *buddy.Locked

	minBlockSize int
	closed       int32
}

// NewArena creates an arena; a nil cfg means DefaultConfig().
func NewArena(cfg *Config) (*Arena, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l, err := buddy.NewLocked(cfg.Capacity)
	if err != nil {
		return nil, err
	}
	slab := mcache.Malloc(l.Capacity())
	return &Arena{
		slab:         slab,
		slabStart:    unsafe.Pointer(&slab[0]),
		alloc:        l,
		minBlockSize: cfg.MinBlockSize,
	}, nil
}

// Capacity returns the slab size, a power of two.
func (a *Arena) Capacity() int {
	return a.alloc.Capacity()
}

// Alloc returns a block of len == size. Its cap is the block size, size
// rounded up to a power of two and to at least MinBlockSize.
// The memory is not zeroed.
//
// Errors are those of buddy.Allocator.Alloc, or ErrArenaClosed.
func (a *Arena) Alloc(size int) ([]byte, error) {
	if a.isClosed() {
		return nil, ErrArenaClosed
	}
	if size <= 0 {
		return nil, buddy.ErrInvalidSize
	}
	n := size
	if n < a.minBlockSize {
		n = a.minBlockSize
	}
	offset, err := a.alloc.Alloc(n)
	if err != nil {
		return nil, err
	}
	exp, _ := buddy.ExponentFor(n)
	return a.slab[offset : offset+size : offset+(1<<exp)], nil
}

// Free returns a block to the arena. Freeing nil or a zero-cap slice is a no-op.
//
// IMPORTANT: The block must be the original slice returned by Alloc.
// Reslicing it (e.g., block[n:] or block[:n:m]) before calling Free makes it
// unrecognizable and ErrInvalidPointer is returned.
func (a *Arena) Free(block []byte) error {
	if cap(block) == 0 {
		return nil
	}
	if a.isClosed() {
		return ErrArenaClosed
	}
	offset, ok := a.Offset(block)
	if !ok {
		return buddy.ErrInvalidPointer
	}
	size, err := a.alloc.BlockSize(offset)
	if err != nil {
		return err
	}
	if cap(block) != size {
		return buddy.ErrInvalidPointer
	}
	return a.alloc.Free(offset)
}

// FreeAt returns the block at the given slab offset to the arena.
// The offset is the one reported by Offset for a block returned by Alloc.
func (a *Arena) FreeAt(offset int) error {
	if a.isClosed() {
		return ErrArenaClosed
	}
	return a.alloc.Free(offset)
}

// Offset returns the slab offset of the first byte of block,
// or false if block does not point into the slab.
func (a *Arena) Offset(block []byte) (int, bool) {
	if cap(block) == 0 || a.isClosed() {
		return 0, false
	}
	// Use slice header directly to avoid panic on zero-length slices.
	dataPtr := *(*uintptr)(unsafe.Pointer(&block))
	start := uintptr(a.slabStart)
	if dataPtr < start || dataPtr-start >= uintptr(len(a.slab)) {
		return 0, false
	}
	return int(dataPtr - start), true
}

// Available returns the total free bytes in the arena.
func (a *Arena) Available() int {
	return a.alloc.Available()
}

// Stats returns a summary of the arena's block usage.
func (a *Arena) Stats() buddy.Stats {
	return a.alloc.Stats()
}

// Reset frees every block at once. Slices handed out before must not be used.
func (a *Arena) Reset() {
	a.alloc.Reset()
}

// Close releases the slab. Blocks still allocated become invalid.
func (a *Arena) Close() {
	if !atomic.CompareAndSwapInt32(&a.closed, 0, 1) {
		return
	}
	if s := a.alloc.Stats(); s.Blocks > 0 {
		log.Printf("MALLOC: arena closed with %d blocks allocated: %s", s.Blocks, s)
	}
	mcache.Free(a.slab)
	a.slab = nil
	a.slabStart = nil
}

func (a *Arena) isClosed() bool {
	return atomic.LoadInt32(&a.closed) != 0
}
