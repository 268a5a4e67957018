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
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocked(t *testing.T) {
	l, err := NewLocked(1000)
	require.NoError(t, err)
	assert.Equal(t, 1024, l.Capacity())

	p, err := l.Alloc(100)
	require.NoError(t, err)
	bs, err := l.BlockSize(p)
	require.NoError(t, err)
	assert.Equal(t, 128, bs)
	assert.Equal(t, 896, l.Available())

	require.NoError(t, l.Free(p))
	assert.Equal(t, ErrInvalidPointer, l.Free(p))
	assert.Equal(t, 1024, l.Available())

	_, err = l.Alloc(100)
	require.NoError(t, err)
	l.Reset()
	assert.Equal(t, 0, l.Stats().Blocks)

	_, err = NewLocked(0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestLockedConcurrent(t *testing.T) {
	const (
		workers = 8
		rounds  = 2000
		maxLive = 32
	)
	l, err := NewLocked(1 << 16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			var live []int
			for i := 0; i < rounds; i++ {
				if len(live) < maxLive && (len(live) == 0 || rng.Intn(2) == 0) {
					p, err := l.Alloc(1 + rng.Intn(64))
					if !assert.NoError(t, err) {
						return
					}
					live = append(live, p)
					continue
				}
				idx := rng.Intn(len(live))
				assert.NoError(t, l.Free(live[idx]))
				live[idx] = live[len(live)-1]
				live = live[:len(live)-1]
			}
			for _, p := range live {
				assert.NoError(t, l.Free(p))
			}
		}(int64(w))
	}
	wg.Wait()

	s := l.Stats()
	assert.Equal(t, l.Capacity(), s.Available)
	assert.Equal(t, 0, s.Blocks)
	assert.Equal(t, 16, s.LargestFreeExponent)
	checkInvariants(t, l.a)
}
