package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSorted(t *testing.T) {
	assert := assert.New(t)

	var keys []string
	var values []int
	for key, value := range IterSorted(map[string]int{"c": 3, "a": 1, "b": 2}) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]string{"a", "b", "c"}, keys)
	assert.Equal([]int{1, 2, 3}, values)

	for range IterSorted(map[string]int{"a": 1, "b": 2}) {
		break
	}
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := IterSorted(map[string]int{"a": 1, "b": 2})
	second := IterSorted(map[string]int{"a": 10})

	var keys []string
	for key := range IterSeq2Concat(first, second) {
		keys = append(keys, key)
	}
	assert.Equal([]string{"a", "b", "a"}, keys)

	assert.Equal(map[string]int{"a": 10, "b": 2}, maps.Collect(IterSeq2Concat(first, second)))
}
