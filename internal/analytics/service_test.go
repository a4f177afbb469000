package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPredictNeedsAtLeastTwoOrders(t *testing.T) {
	for _, dates := range [][]time.Time{nil, {day("2026-01-05")}} {
		p := Predict(dates)
		assert.Equal(t, "insufficient_data", p.Confidence)
		assert.Nil(t, p.PredictedDate)
		assert.Nil(t, p.AvgDaysBetweenOrders)
	}
}

func TestPredictWeeklyBuyer(t *testing.T) {
	dates := []time.Time{
		day("2026-01-05"),
		day("2026-01-12"),
		day("2026-01-19"),
		day("2026-01-26"),
		day("2026-02-02"),
		day("2026-02-09"),
	}

	p := Predict(dates)

	require.NotNil(t, p.AvgDaysBetweenOrders)
	assert.InDelta(t, 7.0, *p.AvgDaysBetweenOrders, 0.001)
	require.NotNil(t, p.PredictedDate)
	assert.Equal(t, day("2026-02-16"), *p.PredictedDate)
	assert.Equal(t, "high", p.Confidence)
}

func TestPredictIgnoresInputOrder(t *testing.T) {
	dates := []time.Time{day("2026-01-19"), day("2026-01-05"), day("2026-01-12")}

	p := Predict(dates)

	require.NotNil(t, p.PredictedDate)
	assert.Equal(t, day("2026-01-26"), *p.PredictedDate)
	assert.Equal(t, "medium", p.Confidence)
}

func TestPredictConfidenceLevels(t *testing.T) {
	two := []time.Time{day("2026-01-05"), day("2026-01-12")}
	assert.Equal(t, "low", Predict(two).Confidence)

	three := append(two, day("2026-01-19"))
	assert.Equal(t, "medium", Predict(three).Confidence)
}

func TestMostActiveDays(t *testing.T) {
	dates := []time.Time{
		day("2026-01-05"), // Monday
		day("2026-01-12"), // Monday
		day("2026-01-19"), // Monday
		day("2026-01-06"), // Tuesday
		day("2026-01-13"), // Tuesday
		day("2026-01-09"), // Friday
		day("2026-01-08"), // Thursday
	}

	days := MostActiveDays(dates)

	require.Len(t, days, 3)
	assert.Equal(t, "Monday", days[0])
	assert.Equal(t, "Tuesday", days[1])
	// Thursday and Friday tie at one order each; the earlier weekday wins.
	assert.Equal(t, "Thursday", days[2])
}

func TestMostActiveDaysEmptyHistory(t *testing.T) {
	assert.Empty(t, MostActiveDays(nil))
}
