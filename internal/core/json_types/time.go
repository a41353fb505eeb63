package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Reference date the backend uses to encode times of day as full datetimes.
var timeOfDayReference = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// TimeOfDay is a recurring clock time (working hours, breaks). The wire value
// is an ISO datetime on the reference date, clock read in UTC.
type TimeOfDay struct {
	Time time.Time
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Time: time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)}
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	str := string(data[1 : len(data)-1])

	parsed, err := time.Parse(time.RFC3339, str)
	if err != nil {
		parsed, err = time.Parse("15:04:05", str)
		if err != nil {
			return fmt.Errorf("failed to parse time of day: %v", err)
		}
	}

	*t = TimeOfDay{Time: parsed.UTC()}
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	ref := time.Date(
		timeOfDayReference.Year(), timeOfDayReference.Month(), timeOfDayReference.Day(),
		t.Time.Hour(), t.Time.Minute(), 0, 0, time.UTC,
	)
	return json.Marshal(ref.Format(time.RFC3339))
}

// MinuteOfDay returns the clock time as minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Time.Hour()*60 + t.Time.Minute()
}

func (t TimeOfDay) Label() string {
	return t.Time.Format("15:04")
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.MinuteOfDay() < other.MinuteOfDay()
}
