package calendar

import (
	"testing"

	"github.com/go-playground/locales/en"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	names := en.New()

	tests := []struct {
		name string
		days WeekdaySet
		want string
	}{
		{
			name: "empty set",
			days: WeekdaySet{},
			want: "No Repetition",
		},
		{
			name: "all seven days",
			days: EveryDay(),
			want: "Every Day",
		},
		{
			name: "monday through friday",
			days: WeekdaySet{Monday, Tuesday, Wednesday, Thursday, Friday},
			want: "Weekdays",
		},
		{
			name: "saturday and sunday",
			days: WeekdaySet{Saturday, Sunday},
			want: "Weekends",
		},
		{
			name: "single day uses full name",
			days: WeekdaySet{Wednesday},
			want: "Wednesday",
		},
		{
			name: "two days use abbreviated names",
			days: WeekdaySet{Monday, Friday},
			want: "Mon and Fri",
		},
		{
			name: "two days normalized to calendar order",
			days: WeekdaySet{Friday, Monday},
			want: "Mon and Fri",
		},
		{
			name: "three days with oxford comma",
			days: WeekdaySet{Monday, Wednesday, Friday},
			want: "Mon, Wed, and Fri",
		},
		{
			name: "six days",
			days: WeekdaySet{Sunday, Monday, Tuesday, Thursday, Friday, Saturday},
			want: "Sun, Mon, Tue, Thu, Fri, and Sat",
		},
		{
			name: "duplicates collapse to a single day",
			days: WeekdaySet{Tuesday, Tuesday},
			want: "Tuesday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.days, names))
		})
	}
}
