package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	assert.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.March, 15), d)

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2026, time.January, 30)

	assert.Equal(t, NewDate(2026, time.February, 1), d.AddDays(2))
	assert.Equal(t, NewDate(2026, time.January, 25), d.AddDays(-5))

	// Crossing a DST transition must still move exactly one calendar day.
	spring := NewDate(2026, time.March, 8)
	assert.Equal(t, NewDate(2026, time.March, 9), spring.AddDays(1))
}

func TestDate_AddMonths(t *testing.T) {
	d := NewDate(2026, time.January, 15)
	assert.Equal(t, NewDate(2026, time.April, 15), d.AddMonths(3))

	// AddDate normalizes overflow, Jan 31 + 1 month lands in March.
	end := NewDate(2026, time.January, 31)
	assert.Equal(t, NewDate(2026, time.March, 3), end.AddMonths(1))
}

func TestDate_After(t *testing.T) {
	earlier := NewDate(2026, time.May, 1)
	later := NewDate(2026, time.May, 2)

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.After(earlier))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, time.July, 4)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-07-04"`, string(data))

	var decoded Date
	assert.NoError(t, json.Unmarshal([]byte(`"2026-07-04"`), &decoded))
	assert.Equal(t, d, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"bad"`), &decoded))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	assert.NoError(t, d.Scan(time.Date(2026, time.August, 28, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, NewDate(2026, time.August, 28), d)

	assert.NoError(t, d.Scan("2026-01-02"))
	assert.Equal(t, NewDate(2026, time.January, 2), d)

	assert.Error(t, d.Scan(42))
}
