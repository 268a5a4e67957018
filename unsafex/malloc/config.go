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

import "fmt"

const (
	// DefaultCapacity is the default arena size (512KB).
	DefaultCapacity = 512 * 1024

	// DefaultMinBlockSize is the default smallest block handed out (64B).
	DefaultMinBlockSize = 64

	// MaxCapacity is the largest slab an arena can be created with (1TB).
	MaxCapacity = 1 << 40
)

// Config holds the configuration for an Arena.
type Config struct {
	// Capacity is the arena size in bytes, rounded up to a power of two.
	Capacity int

	// MinBlockSize is the smallest block size, smaller requests are rounded up.
	// It must be a power of two.
	MinBlockSize int
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Capacity:     DefaultCapacity,
		MinBlockSize: DefaultMinBlockSize,
	}
}

func (c *Config) validate() error {
	if c.MinBlockSize <= 0 || c.MinBlockSize&(c.MinBlockSize-1) != 0 {
		return fmt.Errorf("minBlockSize must be a power of two, got %d", c.MinBlockSize)
	}
	if c.Capacity < c.MinBlockSize {
		return fmt.Errorf("capacity (%d) must be >= minBlockSize (%d)", c.Capacity, c.MinBlockSize)
	}
	if uint64(c.Capacity) > MaxCapacity {
		return fmt.Errorf("capacity must be <= %d, got %d", uint64(MaxCapacity), c.Capacity)
	}
	return nil
}
