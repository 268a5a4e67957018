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

// freeLists holds the start addresses of free blocks, one set per exponent.
// freeLists[e] contains addresses of free blocks of size 1<<e.
type freeLists []map[int]struct{}

func newFreeLists(maxExponent int) freeLists {
	fl := make(freeLists, maxExponent+1)
	for e := range fl {
		fl[e] = make(map[int]struct{})
	}
	return fl
}

func (fl freeLists) insert(exponent, addr int) {
	if _, ok := fl[exponent][addr]; ok {
		panic("buddy: free block listed twice")
	}
	fl[exponent][addr] = struct{}{}
}

func (fl freeLists) remove(exponent, addr int) {
	if _, ok := fl[exponent][addr]; !ok {
		panic("buddy: free block not listed")
	}
	delete(fl[exponent], addr)
}

func (fl freeLists) contains(exponent, addr int) bool {
	_, ok := fl[exponent][addr]
	return ok
}

// pickAny returns some free address at the given exponent.
// Which one is returned when several are free is not defined.
func (fl freeLists) pickAny(exponent int) (int, bool) {
	for addr := range fl[exponent] {
		return addr, true
	}
	return 0, false
}

func (fl freeLists) len(exponent int) int {
	return len(fl[exponent])
}

// reset empties every level and lists the whole range as one free block.
func (fl freeLists) reset() {
	for e := range fl {
		for addr := range fl[e] {
			delete(fl[e], addr)
		}
	}
	fl[len(fl)-1][0] = struct{}{}
}
