// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"slices"

	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// counter tallies terms and remembers the order in which each was first seen.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(term string) {
	if _, ok := c.counts[term]; !ok {
		c.order = append(c.order, term)
	}
	c.counts[term]++
}

func (c *counter) len() int { return len(c.order) }

// top returns up to n terms with count >= minCount, by descending count.
// Equal counts keep first-seen order.
func (c *counter) top(n, minCount int) types.TermFrequencies {
	ranked := make(types.TermFrequencies, 0, len(c.order))
	for _, term := range c.order {
		if cnt := c.counts[term]; cnt >= minCount {
			ranked = append(ranked, types.TermCount{Term: term, Count: cnt})
		}
	}
	slices.SortStableFunc(ranked, func(a, b types.TermCount) int {
		return b.Count - a.Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
