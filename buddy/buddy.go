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

// Package buddy implements a buddy-system allocator over the integer address
// range [0, Capacity).
//
// Blocks are handed out in power-of-two sizes and every block starts at a
// multiple of its own size. A freed block is merged with its buddy, the block
// of the same size whose address differs only in the size bit, and the merge
// repeats upward for as long as the buddy is free.
//
// An Allocator is not safe for concurrent use. Callers sharing one across
// goroutines must hold an exclusive lock around every call, or use Locked.
package buddy

import "fmt"

// Allocator is a buddy allocator managing 1<<MaxExponent() addresses.
type Allocator struct {
	// free holds free blocks per exponent.
	free freeLists

	// occupied maps the start of every allocated block to its exponent.
	// It is the only record of a block's size once handed out.
	occupied map[int]int

	maxExponent int
}

// New creates an allocator whose capacity is the given size rounded up to the
// next power of two. The rounding is permanent.
func New(capacity int) (*Allocator, error) {
	maxExp, err := ExponentFor(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidSize, capacity)
	}
	if maxExp > maxSupportedExponent {
		return nil, fmt.Errorf("%w: capacity %d exceeds 2^%d", ErrOutOfMemory, capacity, maxSupportedExponent)
	}
	a := &Allocator{
		free:        newFreeLists(maxExp),
		occupied:    make(map[int]int),
		maxExponent: maxExp,
	}
	a.free.insert(maxExp, 0)
	return a, nil
}

// Capacity returns the total number of addresses managed, a power of two.
func (a *Allocator) Capacity() int {
	return 1 << a.maxExponent
}

// MaxExponent returns log2(Capacity()).
func (a *Allocator) MaxExponent() int {
	return a.maxExponent
}

// Alloc reserves a block of at least size addresses and returns its start.
// The block size is size rounded up to a power of two.
//
// The smallest non-empty free level at or above the required exponent is
// used, and the block found there is split in halves until it has the
// required size. The upper halves stay free.
//
// On error the allocator is left unchanged.
func (a *Allocator) Alloc(size int) (int, error) {
	desired, err := ExponentFor(size)
	if err != nil {
		return 0, err
	}
	if desired > a.maxExponent {
		return 0, ErrOutOfMemory
	}

	found := -1
	for e := desired; e <= a.maxExponent; e++ {
		if a.free.len(e) > 0 {
			found = e
			break
		}
	}
	if found == -1 {
		return 0, ErrOutOfMemory
	}

	addr, _ := a.free.pickAny(found)
	a.free.remove(found, addr)

	// Keep the lower half, release the upper half one level down.
	for found > desired {
		found--
		a.free.insert(found, addr+(1<<found))
	}

	a.occupied[addr] = desired
	return addr, nil
}

// Free releases the block starting at addr, which must have been returned by
// Alloc and not freed since. Otherwise ErrInvalidPointer is returned and the
// allocator is left unchanged.
func (a *Allocator) Free(addr int) error {
	exp, ok := a.occupied[addr]
	if !ok {
		return ErrInvalidPointer
	}
	delete(a.occupied, addr)

	for exp < a.maxExponent {
		buddy := addr ^ (1 << exp)
		if !a.free.contains(exp, buddy) {
			break
		}
		a.free.remove(exp, buddy)
		if buddy < addr {
			addr = buddy
		}
		exp++
	}
	a.free.insert(exp, addr)
	return nil
}

// BlockSize returns the size of the allocated block starting at addr.
func (a *Allocator) BlockSize(addr int) (int, error) {
	exp, ok := a.occupied[addr]
	if !ok {
		return 0, ErrInvalidPointer
	}
	return 1 << exp, nil
}

// Reset drops all allocations and returns the allocator to its initial state:
// one free block covering the whole range.
func (a *Allocator) Reset() {
	for addr := range a.occupied {
		delete(a.occupied, addr)
	}
	a.free.reset()
}
