package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutinas-app/rutinas/internal/calendar"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name     string
		days     []string
		expected calendar.WeekdaySet
		wantErr  bool
	}{
		{
			name:     "no days",
			days:     nil,
			expected: calendar.WeekdaySet{},
		},
		{
			name:     "abbreviated names",
			days:     []string{"mon", "wed", "fri"},
			expected: calendar.NewWeekdaySet(calendar.Monday, calendar.Wednesday, calendar.Friday),
		},
		{
			name:     "full names",
			days:     []string{"Monday", "Friday"},
			expected: calendar.NewWeekdaySet(calendar.Monday, calendar.Friday),
		},
		{
			name:     "everyday shorthand",
			days:     []string{"everyday"},
			expected: calendar.EveryDay(),
		},
		{
			name:     "weekdays shorthand",
			days:     []string{"weekdays"},
			expected: calendar.NewWeekdaySet(calendar.Monday, calendar.Tuesday, calendar.Wednesday, calendar.Thursday, calendar.Friday),
		},
		{
			name:     "weekends shorthand",
			days:     []string{"weekends"},
			expected: calendar.NewWeekdaySet(calendar.Saturday, calendar.Sunday),
		},
		{
			name:     "duplicates collapse",
			days:     []string{"mon", "monday", "Mon"},
			expected: calendar.NewWeekdaySet(calendar.Monday),
		},
		{
			name:    "unknown day",
			days:    []string{"noday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeekdays(tt.days)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "got %v, expected %v", got, tt.expected)
		})
	}
}

func TestParseStepNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		total    int
		expected int
		wantErr  bool
	}{
		{name: "first step", raw: "1", total: 3, expected: 1},
		{name: "last step", raw: "3", total: 3, expected: 3},
		{name: "zero", raw: "0", total: 3, wantErr: true},
		{name: "beyond total", raw: "4", total: 3, wantErr: true},
		{name: "not a number", raw: "two", total: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStepNumber(tt.raw, tt.total)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
