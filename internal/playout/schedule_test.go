package playout_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &parsed
}

// at builds a local instant; 2026-03-04 is a Wednesday.
func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed
}

func TestScheduleActiveAt(t *testing.T) {
	cases := []struct {
		name     string
		schedule model.Schedule
		now      string
		want     bool
	}{
		{
			name:     "always matches any instant",
			schedule: model.Schedule{ScheduleType: model.ScheduleTypeAlways, Active: true},
			now:      "2026-03-04 03:17",
			want:     true,
		},
		{
			name:     "inactive schedule never matches",
			schedule: model.Schedule{ScheduleType: model.ScheduleTypeAlways, Active: false},
			now:      "2026-03-04 03:17",
			want:     false,
		},
		{
			name: "daily inside window",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily, Active: true,
				StartTime: strPtr("09:00"), EndTime: strPtr("17:00"),
			},
			now:  "2026-03-04 12:30",
			want: true,
		},
		{
			name: "daily window bounds are inclusive",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily, Active: true,
				StartTime: strPtr("09:00"), EndTime: strPtr("17:00"),
			},
			now:  "2026-03-04 17:00",
			want: true,
		},
		{
			name: "daily outside window",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily, Active: true,
				StartTime: strPtr("09:00"), EndTime: strPtr("17:00"),
			},
			now:  "2026-03-04 17:01",
			want: false,
		},
		{
			name: "overnight window active before midnight",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily, Active: true,
				StartTime: strPtr("22:00"), EndTime: strPtr("06:00"),
			},
			now:  "2026-03-04 23:30",
			want: true,
		},
		{
			name: "overnight window active after midnight",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily, Active: true,
				StartTime: strPtr("22:00"), EndTime: strPtr("06:00"),
			},
			now:  "2026-03-04 02:00",
			want: true,
		},
		{
			name: "overnight window inactive midday",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily, Active: true,
				StartTime: strPtr("22:00"), EndTime: strPtr("06:00"),
			},
			now:  "2026-03-04 12:00",
			want: false,
		},
		{
			name: "open-ended start time",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily, Active: true,
				EndTime: strPtr("06:00"),
			},
			now:  "2026-03-04 01:00",
			want: true,
		},
		{
			name: "weekly matches listed weekday",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeWeekly, Active: true,
				DaysOfWeek: []int64{3},
			},
			now:  "2026-03-04 10:00",
			want: true,
		},
		{
			name: "weekend-only schedule skips wednesday",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeWeekly, Active: true,
				DaysOfWeek: []int64{6, 7},
			},
			now:  "2026-03-04 10:00",
			want: false,
		},
		{
			name: "weekly with empty days matches nothing",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeWeekly, Active: true,
			},
			now:  "2026-03-04 10:00",
			want: false,
		},
		{
			name: "weekly respects clock window on matching day",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeWeekly, Active: true,
				DaysOfWeek: []int64{3},
				StartTime:  strPtr("14:00"), EndTime: strPtr("16:00"),
			},
			now:  "2026-03-04 10:00",
			want: false,
		},
		{
			name: "custom matches listed date",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeCustom, Active: true,
				CustomDates: []string{"2026-03-01", "2026-03-04"},
			},
			now:  "2026-03-04 10:00",
			want: true,
		},
		{
			name: "custom skips unlisted date",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeCustom, Active: true,
				CustomDates: []string{"2026-03-01"},
			},
			now:  "2026-03-04 10:00",
			want: false,
		},
		{
			name: "custom tolerates timestamp-shaped dates",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeCustom, Active: true,
				CustomDates: []string{"2026-03-04T00:00:00Z"},
			},
			now:  "2026-03-04 10:00",
			want: true,
		},
		{
			name: "custom with no terms matches nothing",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeCustom, Active: true,
			},
			now:  "2026-03-04 10:00",
			want: false,
		},
		{
			name: "unknown type matches nothing",
			schedule: model.Schedule{
				ScheduleType: "lunar", Active: true,
			},
			now:  "2026-03-04 10:00",
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := playout.ScheduleActiveAt(tc.schedule, at(t, tc.now))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScheduleActiveAtDateBounds(t *testing.T) {
	schedule := model.Schedule{
		ScheduleType: model.ScheduleTypeDateRange,
		Active:       true,
		StartDate:    datePtr(t, "2026-03-01"),
		EndDate:      datePtr(t, "2026-03-10"),
	}

	assert.False(t, playout.ScheduleActiveAt(schedule, at(t, "2026-02-28 23:59")))
	assert.True(t, playout.ScheduleActiveAt(schedule, at(t, "2026-03-01 00:00")), "start date is inclusive")
	assert.True(t, playout.ScheduleActiveAt(schedule, at(t, "2026-03-10 23:59")), "end date is inclusive")
	assert.False(t, playout.ScheduleActiveAt(schedule, at(t, "2026-03-11 00:00")))
}

func TestScheduleActiveAtIsDeterministic(t *testing.T) {
	schedule := model.Schedule{
		ScheduleType: model.ScheduleTypeWeekly,
		Active:       true,
		DaysOfWeek:   []int64{1, 3, 5},
		StartTime:    strPtr("08:00"),
		EndTime:      strPtr("20:00"),
	}
	now := at(t, "2026-03-04 09:15")
	first := playout.ScheduleActiveAt(schedule, now)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, playout.ScheduleActiveAt(schedule, now))
	}
}
