package playout

import (
	"fmt"
	"regexp"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

var clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// ValidateSchedule rejects misconfigured rules at create/update time so they
// never reach resolution. Errors wrap ErrInvalidScheduleConfig with a
// structured reason; message localization belongs to the API layer.
func ValidateSchedule(s model.Schedule) error {
	switch s.ScheduleType {
	case model.ScheduleTypeAlways, model.ScheduleTypeDaily,
		model.ScheduleTypeWeekly, model.ScheduleTypeDateRange,
		model.ScheduleTypeCustom:
	default:
		return fmt.Errorf("%w: unknown schedule_type %q", ErrInvalidScheduleConfig, s.ScheduleType)
	}

	if s.StartDate != nil && s.EndDate != nil &&
		s.EndDate.Format(dateLayout) < s.StartDate.Format(dateLayout) {
		return fmt.Errorf("%w: end_date before start_date", ErrInvalidScheduleConfig)
	}

	for _, clock := range []*string{s.StartTime, s.EndTime} {
		if clock != nil && !clockPattern.MatchString(*clock) {
			return fmt.Errorf("%w: malformed clock value %q", ErrInvalidScheduleConfig, *clock)
		}
	}

	if s.ScheduleType == model.ScheduleTypeWeekly {
		if len(s.DaysOfWeek) == 0 {
			return fmt.Errorf("%w: weekly schedule has no days_of_week", ErrInvalidScheduleConfig)
		}
		for _, d := range s.DaysOfWeek {
			if d < 1 || d > 7 {
				return fmt.Errorf("%w: day_of_week %d out of range 1..7", ErrInvalidScheduleConfig, d)
			}
		}
	}

	if s.ScheduleType == model.ScheduleTypeCustom &&
		len(s.CustomDates) == 0 && s.StartTime == nil && s.EndTime == nil {
		return fmt.Errorf("%w: custom schedule has neither dates nor a time window", ErrInvalidScheduleConfig)
	}

	return nil
}

// ValidateCampaign guards the campaign date invariant.
func ValidateCampaign(c model.Campaign) error {
	if c.EndDate.Format(dateLayout) < c.StartDate.Format(dateLayout) {
		return fmt.Errorf("%w: campaign end_date before start_date", ErrInvalidScheduleConfig)
	}
	return nil
}
