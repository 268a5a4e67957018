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

import "errors"

var (
	// ErrInvalidSize is returned by Alloc for a size <= 0.
	ErrInvalidSize = errors.New("buddy: invalid size")

	// ErrOutOfMemory is returned by Alloc when no free block of the requested
	// exponent or larger exists, including requests larger than the capacity.
	ErrOutOfMemory = errors.New("buddy: out of memory")

	// ErrInvalidPointer is returned by Free for an address that is not
	// currently allocated. A double free is always reported with this error.
	ErrInvalidPointer = errors.New("buddy: invalid pointer")
)
