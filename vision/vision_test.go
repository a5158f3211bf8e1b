package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClassifier(t *testing.T) {
	c := NewMockClassifier(1)

	predictions, err := c.Classify(context.Background(), "bottle.jpg")
	require.NoError(t, err)
	require.Len(t, predictions, 6)

	assert.Equal(t, "Food Waste (Organic)", predictions[0].ClassName)
	assert.Equal(t, CategoryOrganic, predictions[0].Category)
	assert.Equal(t, "compost bin", predictions[0].Action)

	for _, p := range predictions {
		assert.GreaterOrEqual(t, p.Score, 45.0)
		assert.LessOrEqual(t, p.Score, 100.0)
		assert.NotEmpty(t, p.Action)
	}
}

func TestScoreRangesPerClass(t *testing.T) {
	c := NewMockClassifier(7)

	for i := 0; i < 20; i++ {
		predictions, err := c.Classify(context.Background(), "img.png")
		require.NoError(t, err)

		// The top organic class always scores in its 80-100 band.
		assert.GreaterOrEqual(t, predictions[0].Score, 80.0)
		assert.LessOrEqual(t, predictions[0].Score, 100.0)

		// Aluminum can sits in the lowest band.
		last := predictions[len(predictions)-1]
		assert.GreaterOrEqual(t, last.Score, 45.0)
		assert.LessOrEqual(t, last.Score, 60.0)
	}
}
