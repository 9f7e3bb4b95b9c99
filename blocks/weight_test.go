package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightAdd(t *testing.T) {
	cases := []struct {
		name string
		a, b Weight
		want Weight
	}{
		{"RearRear", Weight{Rear, 3}, Weight{Rear, 4}, Weight{Rear, 7}},
		{"RearSide", Weight{Rear, 2}, Weight{Side, 1}, Weight{Side, 3}},
		{"ZeroLoss", Weight{Rear, 0}, Weight{Rear, 0}, Weight{Rear, 0}},
		{"Saturates", Weight{Rear, 250}, Weight{Rear, 10}, Weight{Rear, 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Add(tc.b))
		})
	}
}

func TestWeightAddSidePanics(t *testing.T) {
	assert.Panics(t, func() { Weight{Side, 1}.Add(Weight{Rear, 1}) })
	assert.Panics(t, func() { Weight{Side, 1}.Add(Weight{Side, 1}) })
}

func TestWeightLess(t *testing.T) {
	assert.True(t, Weight{Rear, 5}.Less(Weight{Rear, 6}))
	assert.False(t, Weight{Rear, 6}.Less(Weight{Rear, 6}))
	// Rear orders before Side regardless of loss.
	assert.True(t, Weight{Rear, 15}.Less(Weight{Side, 0}))
	assert.False(t, Weight{Side, 0}.Less(Weight{Rear, 15}))
}

func TestWeightString(t *testing.T) {
	assert.Equal(t, "Rear(1)", Weight{Rear, 1}.String())
	assert.Equal(t, "Side(0)", Weight{Side, 0}.String())
}
