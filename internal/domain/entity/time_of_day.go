package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TimeOfDay is a wall-clock hour and minute, the granularity reminders fire at.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ErrInvalidTimeOfDay is returned for strings that are not a valid HH:MM.
var ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM")

// NewTimeOfDay validates hour and minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, errors.Wrapf(ErrInvalidTimeOfDay, "out of range %d:%d", hour, minute)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock, both fields zero padded).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return TimeOfDay{}, errors.Wrapf(ErrInvalidTimeOfDay, "got %q", s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, errors.Wrapf(ErrInvalidTimeOfDay, "got %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return TimeOfDay{}, errors.Wrapf(ErrInvalidTimeOfDay, "got %q", s)
	}

	return NewTimeOfDay(hour, minute)
}

// TimeOfDayOf truncates t to its hour and minute. Seconds and below are dropped.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON encodes the value as "HH:MM".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "time of day must be a string")
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}
