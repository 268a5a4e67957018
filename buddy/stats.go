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

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Available returns the number of free addresses.
func (a *Allocator) Available() int {
	total := 0
	for e := range a.free {
		total += a.free.len(e) << e
	}
	return total
}

// Allocated returns the number of addresses held by allocated blocks,
// including the padding from rounding requests up to a power of two.
func (a *Allocator) Allocated() int {
	return a.Capacity() - a.Available()
}

// LargestFreeExponent returns the exponent of the largest free block,
// or -1 if nothing is free.
func (a *Allocator) LargestFreeExponent() int {
	for e := a.maxExponent; e >= 0; e-- {
		if a.free.len(e) > 0 {
			return e
		}
	}
	return -1
}

// Stats is a point-in-time summary of an allocator.
type Stats struct {
	Capacity  int
	Available int
	Allocated int

	// Blocks is the number of allocated blocks.
	Blocks int

	// FreeBlocks[e] is the number of free blocks of size 1<<e.
	FreeBlocks []int

	LargestFreeExponent int
}

// Stats returns a summary of the allocator. It does not modify it.
func (a *Allocator) Stats() Stats {
	s := Stats{
		Capacity:            a.Capacity(),
		Available:           a.Available(),
		Allocated:           a.Allocated(),
		Blocks:              len(a.occupied),
		FreeBlocks:          make([]int, len(a.free)),
		LargestFreeExponent: a.LargestFreeExponent(),
	}
	for e := range a.free {
		s.FreeBlocks[e] = a.free.len(e)
	}
	return s
}

func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "capacity %s, available %s, allocated %s in %d blocks",
		humanize.IBytes(uint64(s.Capacity)),
		humanize.IBytes(uint64(s.Available)),
		humanize.IBytes(uint64(s.Allocated)),
		s.Blocks)
	if s.LargestFreeExponent >= 0 {
		fmt.Fprintf(&b, ", largest free %s", humanize.IBytes(uint64(1)<<s.LargestFreeExponent))
	}
	return b.String()
}
