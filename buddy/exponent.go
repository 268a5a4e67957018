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

import "math/bits"

// maxSupportedExponent keeps 1<<exponent representable as a positive int.
const maxSupportedExponent = bits.UintSize - 2

// ExponentFor returns the smallest e >= 0 such that 1<<e >= size.
// It returns ErrInvalidSize if size <= 0.
func ExponentFor(size int) (int, error) {
	if size <= 0 {
		return 0, ErrInvalidSize
	}
	if size == 1 {
		return 0, nil
	}
	return bits.Len(uint(size - 1)), nil
}
