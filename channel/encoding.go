package channel

import (
	"encoding/json"
	"slices"
)

// Equal reports whether two channels hold equal elements in the same order.
func Equal[T comparable, S Store[T]](a, b *Channel[T, S]) bool {
	return slices.Equal(a.store.Slice(), b.store.Slice())
}

// MarshalJSON encodes the channel as its store.
func (c Channel[T, S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.store)
}

// UnmarshalJSON replaces the store with the decoded one.
func (c *Channel[T, S]) UnmarshalJSON(data []byte) error {
	var store S
	err := json.Unmarshal(data, &store)
	if err != nil {
		return err
	}
	c.store = store
	return nil
}
