package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHaversineDistance(t *testing.T) {
	assert.Equal(t, 0.0, CalculateHaversineDistance(45.0, 9.0, 45.0, 9.0))

	// Milano Duomo to Roma Colosseo.
	d := CalculateHaversineDistance(45.4642, 9.1900, 41.8902, 12.4922)
	assert.InDelta(t, 477_000, d, 2_000)

	// One degree of latitude.
	assert.InDelta(t, 111_194.93, CalculateHaversineDistance(45.0, 9.0, 46.0, 9.0), 0.01)
}

func TestTruncateDay_KeepsWallDate(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	late := time.Date(2024, 6, 12, 0, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), TruncateDay(late))
}

func TestRangesOverlap(t *testing.T) {
	d := func(s string) time.Time {
		v, err := ParseDate(s)
		require.NoError(t, err)
		return v
	}

	assert.True(t, RangesOverlap(d("2024-06-03"), d("2024-06-07"), d("2024-06-01"), d("2024-06-05")))
	assert.True(t, RangesOverlap(d("2024-06-05"), d("2024-06-05"), d("2024-06-01"), d("2024-06-05")))
	assert.False(t, RangesOverlap(d("2024-06-06"), d("2024-06-07"), d("2024-06-01"), d("2024-06-05")))
	assert.True(t, DateInRange(d("2024-06-01"), d("2024-06-01"), d("2024-06-05")))
	assert.False(t, DateInRange(d("2024-05-31"), d("2024-06-01"), d("2024-06-05")))
}

func TestEachDay(t *testing.T) {
	start, _ := ParseDate("2024-02-27")
	end, _ := ParseDate("2024-03-01")

	var got []string
	EachDay(start, end, func(day time.Time) {
		got = append(got, FormatDate(day))
	})

	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}, got)
}

func TestDatePtrHelpers(t *testing.T) {
	s := "2024-06-12"
	bad := "12/06/2024"

	require.NotNil(t, ParseDatePtr(&s))
	assert.Nil(t, ParseDatePtr(&bad))
	assert.Nil(t, ParseDatePtr(nil))
	assert.Equal(t, &s, FormatDatePtr(ParseDatePtr(&s)))
	assert.Nil(t, FormatDatePtr(nil))
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("13:05")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 13, Minute: 5}, c)
	assert.Equal(t, "13:05", c.String())

	c, err = ParseClock("09:10:01")
	require.NoError(t, err)
	assert.Equal(t, "09:10:01", c.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("")
	assert.Error(t, err)
}

func TestClock_On(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	day := time.Date(2024, 6, 12, 17, 45, 0, 0, loc)

	got := MustParseClock("09:00").On(day)

	assert.Equal(t, time.Date(2024, 6, 12, 9, 0, 0, 0, loc), got)
	assert.True(t, MustParseClock("09:00").Before(MustParseClock("09:00:01")))
	assert.False(t, MustParseClock("15:00").Before(MustParseClock("15:00")))
}
