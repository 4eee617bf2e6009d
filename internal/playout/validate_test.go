package playout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
)

func TestValidateSchedule(t *testing.T) {
	cases := []struct {
		name     string
		schedule model.Schedule
		wantErr  bool
	}{
		{
			name:     "always needs nothing else",
			schedule: model.Schedule{ScheduleType: model.ScheduleTypeAlways},
		},
		{
			name:     "unknown type rejected",
			schedule: model.Schedule{ScheduleType: "fortnightly"},
			wantErr:  true,
		},
		{
			name: "end date before start date rejected",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDateRange,
				StartDate:    datePtr(t, "2026-03-10"),
				EndDate:      datePtr(t, "2026-03-01"),
			},
			wantErr: true,
		},
		{
			name: "single day range allowed",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDateRange,
				StartDate:    datePtr(t, "2026-03-10"),
				EndDate:      datePtr(t, "2026-03-10"),
			},
		},
		{
			name: "malformed clock rejected",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily,
				StartTime:    strPtr("9am"),
			},
			wantErr: true,
		},
		{
			name: "out of range clock rejected",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily,
				StartTime:    strPtr("24:00"),
			},
			wantErr: true,
		},
		{
			name: "postgres time format accepted",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily,
				StartTime:    strPtr("09:00:00"),
				EndTime:      strPtr("17:30:00"),
			},
		},
		{
			name: "overnight window accepted",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeDaily,
				StartTime:    strPtr("22:00"),
				EndTime:      strPtr("06:00"),
			},
		},
		{
			name: "weekly without days rejected",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeWeekly,
			},
			wantErr: true,
		},
		{
			name: "weekly day out of range rejected",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeWeekly,
				DaysOfWeek:   []int64{1, 8},
			},
			wantErr: true,
		},
		{
			name: "weekly with valid days accepted",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeWeekly,
				DaysOfWeek:   []int64{6, 7},
			},
		},
		{
			name: "custom without terms rejected",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeCustom,
			},
			wantErr: true,
		},
		{
			name: "custom with dates accepted",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeCustom,
				CustomDates:  []string{"2026-12-24"},
			},
		},
		{
			name: "custom with only a time window accepted",
			schedule: model.Schedule{
				ScheduleType: model.ScheduleTypeCustom,
				StartTime:    strPtr("12:00"),
				EndTime:      strPtr("13:00"),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := playout.ValidateSchedule(tc.schedule)
			if tc.wantErr {
				assert.ErrorIs(t, err, playout.ErrInvalidScheduleConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCampaign(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		err := playout.ValidateCampaign(model.Campaign{
			StartDate: *datePtr(t, "2026-03-01"),
			EndDate:   *datePtr(t, "2026-03-31"),
		})
		assert.NoError(t, err)
	})

	t.Run("single day window", func(t *testing.T) {
		err := playout.ValidateCampaign(model.Campaign{
			StartDate: *datePtr(t, "2026-03-01"),
			EndDate:   *datePtr(t, "2026-03-01"),
		})
		assert.NoError(t, err)
	})

	t.Run("inverted window rejected", func(t *testing.T) {
		err := playout.ValidateCampaign(model.Campaign{
			StartDate: *datePtr(t, "2026-03-31"),
			EndDate:   *datePtr(t, "2026-03-01"),
		})
		assert.ErrorIs(t, err, playout.ErrInvalidScheduleConfig)
	})
}
