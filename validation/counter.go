// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package validation

import "sync/atomic"

// EventCounter aggregates rejected validations per failure Category. It is
// the only mutable state in the module; increments and reads are lock-free
// atomics, safe for arbitrary concurrent callers.
//
// The zero value is ready to use.
type EventCounter struct {
	counts [7]atomic.Uint64
}

// NewEventCounter returns a counter with all categories at zero.
func NewEventCounter() *EventCounter {
	return &EventCounter{}
}

// categoryIndex maps a Category to its slot. Unknown categories share the
// last slot rather than panicking in the rejection path.
func categoryIndex(c Category) int {
	for i, known := range AllCategories() {
		if c == known {
			return i
		}
	}
	return len(AllCategories()) - 1
}

// Record increments the counter for the given category.
func (c *EventCounter) Record(category Category) {
	c.counts[categoryIndex(category)].Add(1)
}

// Count returns the number of recorded rejections for the category.
func (c *EventCounter) Count(category Category) uint64 {
	return c.counts[categoryIndex(category)].Load()
}

// Total returns the number of recorded rejections across all categories.
func (c *EventCounter) Total() uint64 {
	var total uint64
	for i := range c.counts {
		total += c.counts[i].Load()
	}
	return total
}

// Snapshot returns a point-in-time copy of all per-category counts. The
// categories are read individually, not atomically as a set.
func (c *EventCounter) Snapshot() map[Category]uint64 {
	snapshot := make(map[Category]uint64, len(AllCategories()))
	for i, category := range AllCategories() {
		snapshot[category] = c.counts[i].Load()
	}
	return snapshot
}

// Reset sets every category back to zero.
func (c *EventCounter) Reset() {
	for i := range c.counts {
		c.counts[i].Store(0)
	}
}
