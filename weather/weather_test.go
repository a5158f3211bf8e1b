package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProviderRanges(t *testing.T) {
	p := NewMockProvider(1)

	for i := 0; i < 50; i++ {
		obs, err := p.Current(context.Background(), 0, 0)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, obs.Temperature, 20)
		assert.Less(t, obs.Temperature, 35)
		assert.GreaterOrEqual(t, obs.Humidity, 30)
		assert.Less(t, obs.Humidity, 80)
		assert.GreaterOrEqual(t, obs.WindSpeed, 5)
		assert.Less(t, obs.WindSpeed, 25)
		assert.Contains(t, conditions, obs.Condition)
		assert.Contains(t, windDirections, obs.WindDirection)
	}
}

func TestRecommend(t *testing.T) {
	sunny := Recommend("Cerah")
	require.Len(t, sunny, 5)
	assert.Equal(t, "Cycling around the city or park", sunny[0].Title)

	rainy := Recommend("Hujan Lebat")
	require.Len(t, rainy, 5)
	assert.Equal(t, "Attend a webinar or online training about sustainability", rainy[0].Title)

	// Unknown conditions fall back to the generic list.
	fallback := Recommend("Blizzard")
	assert.Equal(t, defaultActivities, fallback)
}

func TestDescribe(t *testing.T) {
	desc := Describe("Cerah", 32)
	assert.Contains(t, desc, "sunny")
	assert.Contains(t, desc, "quite hot")

	desc = Describe("Hujan Ringan", 22)
	assert.Contains(t, desc, "umbrella")
	assert.Contains(t, desc, "pleasant")

	desc = Describe("Blizzard", 18)
	assert.Contains(t, desc, "Typical weather")
	assert.Contains(t, desc, "cool")
}
