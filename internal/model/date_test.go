package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsUntil(t *testing.T) {

	now := time.Date(2025, time.September, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date Date
		want int
	}{
		{"15 months and 10 days counts 15", NewDate(2024, time.June, 15), 15},
		{"exactly on the day counts the month", NewDate(2024, time.September, 25), 12},
		{"one day short of a month counts 0", NewDate(2025, time.August, 26), 0},
		{"same day counts 0", NewDate(2025, time.September, 25), 0},
		{"future date counts 0", NewDate(2025, time.December, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.MonthsUntil(now))
		})
	}
}

func TestDateJSON(t *testing.T) {

	d := NewDate(2024, time.June, 15)

	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-06-15"`, string(b))

	var back Date
	assert.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.String(), back.String())

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"15/06/2024"`), &bad))
}
