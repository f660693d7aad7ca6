package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected string
	}{
		{name: "product and quantity", key: Key{ProductCode: "R12", Quantity: 15}, expected: "R12:15"},
		{name: "zero quantity", key: Key{ProductCode: "T58", Quantity: 0}, expected: "T58:0"},
		{name: "empty code", key: Key{Quantity: 7}, expected: ":7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.key.String())
		})
	}
}

func TestKey_Comparable(t *testing.T) {
	seen := map[Key]bool{{ProductCode: "R12", Quantity: 15}: true}

	assert.True(t, seen[Key{ProductCode: "R12", Quantity: 15}])
	assert.False(t, seen[Key{ProductCode: "L09", Quantity: 15}])
}
