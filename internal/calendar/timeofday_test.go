package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        TimeOfDay
	}{
		{name: "hours and minutes", input: "07:30", want: TimeOfDay{Hour: 7, Minute: 30}},
		{name: "with seconds", input: "20:15:59", want: TimeOfDay{Hour: 20, Minute: 15}},
		{name: "midnight", input: "00:00", want: TimeOfDay{}},
		{name: "invalid", input: "25:99", expectError: true},
		{name: "garbage", input: "noon", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start := TimeOfDay{Hour: 23, Minute: 30}
	assert.Equal(t, TimeOfDay{Hour: 0, Minute: 15}, start.AddMinutes(45))
	assert.Equal(t, TimeOfDay{Hour: 23, Minute: 30}, start.AddMinutes(0))
	assert.Equal(t, TimeOfDay{Hour: 22, Minute: 30}, start.AddMinutes(-60))
}

func TestTimeOfDay_Before(t *testing.T) {
	assert.True(t, TimeOfDay{Hour: 7}.Before(TimeOfDay{Hour: 8}))
	assert.False(t, TimeOfDay{Hour: 12}.Before(TimeOfDay{Hour: 8}))
	assert.False(t, TimeOfDay{Hour: 8}.Before(TimeOfDay{Hour: 8}))
}

func TestTimeOfDay_On(t *testing.T) {
	date := time.Date(2025, 6, 13, 22, 45, 12, 0, time.UTC)
	anchored := TimeOfDay{Hour: 7, Minute: 30}.On(date)
	assert.Equal(t, time.Date(2025, 6, 13, 7, 30, 0, 0, time.UTC), anchored)
}

func TestTimeOfDay_YAML(t *testing.T) {
	var record struct {
		StartTime TimeOfDay `yaml:"start_time"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`start_time: "08:05"`), &record))
	assert.Equal(t, TimeOfDay{Hour: 8, Minute: 5}, record.StartTime)

	data, err := yaml.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), "08:05")

	assert.Error(t, yaml.Unmarshal([]byte(`start_time: "later"`), &record))
}

func TestTimeOfDay_ValueScan(t *testing.T) {
	value, err := TimeOfDay{Hour: 7, Minute: 30}.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:30:00", value)

	var scanned TimeOfDay
	require.NoError(t, scanned.Scan([]byte("07:30:00")))
	assert.Equal(t, TimeOfDay{Hour: 7, Minute: 30}, scanned)

	require.NoError(t, scanned.Scan(time.Date(2025, 1, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 15}, scanned)

	assert.Error(t, scanned.Scan(42))
}
