package sightings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-07-01")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2021, Month: time.July, Day: 1}, d)
	assert.Equal(t, "2021-07-01", d.String())

	for _, bad := range []string{"", "2021-7-1", "01/07/2021", "2021-02-30", "2021-07-01T00:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOf_IgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	d := DateOf(time.Date(2021, time.June, 30, 23, 30, 0, 0, loc))
	assert.Equal(t, "2021-06-30", d.String())
	assert.True(t, d.Time().Equal(time.Date(2021, time.June, 30, 0, 0, 0, 0, time.UTC)))
}

func TestDate_Between_Inclusive(t *testing.T) {
	start := Date{Year: 2021, Month: time.June, Day: 1}
	end := Date{Year: 2021, Month: time.September, Day: 1}
	july := Date{Year: 2021, Month: time.July, Day: 1}

	assert.True(t, july.Between(start, end))
	assert.True(t, start.Between(start, end))
	assert.True(t, end.Between(start, end))
	assert.False(t, july.Between(start, Date{Year: 2021, Month: time.June, Day: 30}))
	assert.False(t, july.Between(end, start))
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, Date{Year: 2000, Month: time.January, Day: 1}.IsZero())
}
