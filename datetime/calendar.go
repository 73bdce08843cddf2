// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate represents a proleptic Gregorian date with a year, month
// and day packed into a single value. CalendarDates are comparable and
// ordered, ie. an earlier date is always numerically less than a later one.
type CalendarDate uint32

// The range of years that can be represented by a CalendarDate.
const (
	MinYear = 1
	MaxYear = 1<<16 - 1
)

// NewCalendarDate creates a new CalendarDate. No validation is performed,
// use Valid to check that the date exists. Years outside of MinYear to
// MaxYear cannot be represented and the resulting date is meaningless.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(year)<<16 | uint32(month)<<8 | uint32(day)) //nolint:gosec
}

// CalendarDateFromTime returns the CalendarDate for the specified time
// in that time's location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	return NewCalendarDate(t.Year(), Month(t.Month()), t.Day())
}

// Today returns the current date in the specified location, where now
// is the current time. A nil location is treated as UTC.
func Today(now time.Time, loc *time.Location) CalendarDate {
	if loc == nil {
		loc = time.UTC
	}
	return CalendarDateFromTime(now.In(loc))
}

func (cd CalendarDate) Year() int {
	return int(cd >> 16)
}

func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// Valid returns true if the date refers to an existing day.
func (cd CalendarDate) Valid() bool {
	if cd.Year() < MinYear {
		return false
	}
	m := cd.Month()
	if m < 1 || m > 12 {
		return false
	}
	return cd.Day() >= 1 && cd.Day() <= DaysInMonth(cd.Year(), m)
}

// String returns the date in ISO 8601 format, ie. 2006-01-02.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

// Time returns the time.Time for the date at the specified time of day
// in the specified location. A nil location is treated as UTC.
func (cd CalendarDate) Time(tod TimeOfDay, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
}

// Weekday returns the day of the week for the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.Time(0, time.UTC).Weekday()
}

// AddDays returns the date n days after (or before for negative n) cd.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	t := time.Date(cd.Year(), time.Month(cd.Month()), cd.Day()+n, 12, 0, 0, 0, time.UTC)
	return CalendarDateFromTime(t)
}

// Tomorrow returns the date of the next day, crossing month and
// year boundaries as needed.
func (cd CalendarDate) Tomorrow() CalendarDate {
	return cd.AddDays(1)
}

// Yesterday returns the date of the previous day.
func (cd CalendarDate) Yesterday() CalendarDate {
	return cd.AddDays(-1)
}

// DaysUntil returns the number of days from cd to end, which is negative
// if end is before cd.
func (cd CalendarDate) DaysUntil(end CalendarDate) int {
	a, b := cd.Time(0, time.UTC), end.Time(0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

const expectedCalendarFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// Parse parses a date in one of the formats 2006-01-02, 01/02/2006
// or Jan-02-2006 with error checking for valid month and day.
func (cd *CalendarDate) Parse(val string) error {
	var y, m, d string
	switch {
	case strings.Contains(val, "/"):
		parts := strings.Split(val, "/")
		if len(parts) != 3 {
			return fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarFormats)
		}
		m, d, y = parts[0], parts[1], parts[2]
	case strings.Count(val, "-") == 2:
		parts := strings.Split(val, "-")
		if len(parts[0]) == 4 {
			y, m, d = parts[0], parts[1], parts[2]
		} else {
			m, d, y = parts[0], parts[1], parts[2]
		}
	default:
		return fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarFormats)
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", y, err)
	}
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year %d is outside of the range %d to %d", year, MinYear, MaxYear)
	}
	var month Month
	if err := month.Parse(m); err != nil {
		return err
	}
	day, err := strconv.Atoi(d)
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", d, err)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("invalid day for %v %v: %d", month, year, day)
	}
	*cd = NewCalendarDate(year, month, day)
	return nil
}

// ParseCalendarDate is a convenience wrapper around CalendarDate.Parse.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var cd CalendarDate
	err := cd.Parse(val)
	return cd, err
}

// CalendarDateList is a list of dates.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Dates returns the dates from start to end inclusive.
func Dates(start, end CalendarDate) CalendarDateList {
	var cdl CalendarDateList
	for cd := start; cd <= end; cd = cd.Tomorrow() {
		cdl = append(cdl, cd)
	}
	return cdl
}
