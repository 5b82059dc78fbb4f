package model

import "fmt"

// Sequences holds one monotonic counter per collection, persisted with the
// data so IDs survive restarts and never repeat after cancellations.
type Sequences map[string]int

func (s Sequences) Next(collection, prefix string) string {
	s[collection]++
	return fmt.Sprintf("%s%d", prefix, s[collection])
}
