// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sun

import (
	"fmt"
	"time"

	"cloudeng.io/astral/astronomy"
	"cloudeng.io/astral/datetime"
	"cloudeng.io/errors"
)

// Interval represents a period of time bounded by two solar events,
// Start is never after End.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Contains returns true if t is within the interval, the start is
// inclusive and the end exclusive.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// In returns the interval with both times in the specified location.
func (i Interval) In(loc *time.Location) Interval {
	return Interval{Start: in(i.Start, loc), End: in(i.End, loc)}
}

func (i Interval) String() string {
	return fmt.Sprintf("%v - %v", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

func in(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t.UTC()
	}
	return t.In(loc)
}

// Noon returns the time of solar noon, when the sun is at its highest
// point, on the specified date. A nil location is treated as UTC.
func Noon(o Observer, cd datetime.CalendarDate, loc *time.Location) time.Time {
	jc := astronomy.JulianDayToCentury(astronomy.JulianDay(cd))
	eqt := astronomy.EquationOfTime(jc)
	return in(fromUTCHours(cd, (720-4*o.Longitude-eqt)/60), loc)
}

// Midnight returns the time of solar midnight, when the sun is at its
// lowest point. The solar midnight returned is the one closest to 00:00
// UTC on the specified date and may therefore fall on the previous day.
func Midnight(o Observer, cd datetime.CalendarDate, loc *time.Location) time.Time {
	jc := astronomy.JulianDayToCentury(astronomy.JulianDay(cd) + 0.5 - o.Longitude/360)
	eqt := astronomy.EquationOfTime(jc)
	return in(fromUTCHours(cd, (-4*o.Longitude-eqt)/60), loc)
}

// reclassify refines a failure to reach zenith into one of sun always
// above or always below according to whether the sun is below the
// horizon at solar noon.
func reclassify(o Observer, cd datetime.CalendarDate, event string, zenith float64, err error) error {
	if !errors.Is(err, ErrElevationNeverReached) {
		return err
	}
	noonZenith, _ := astronomy.ZenithAndAzimuth(o.Latitude, o.Longitude, Noon(o, cd, time.UTC), true)
	reason := ErrSunAlwaysAbove
	if noonZenith > 90 {
		reason = ErrSunAlwaysBelow
	}
	return &ElevationError{Event: event, Zenith: zenith, Date: cd, Reason: reason}
}

func timeAt(o Observer, cd datetime.CalendarDate, event string, zenith float64, dir Direction, loc *time.Location) (time.Time, error) {
	t, err := TimeAtZenith(o, cd, zenith, dir)
	if err != nil {
		return time.Time{}, reclassify(o, cd, event, zenith, err)
	}
	return in(t, loc), nil
}

// Dawn returns the time in the morning when the sun is the specified
// depression below the horizon.
func Dawn(o Observer, cd datetime.CalendarDate, depression Depression, loc *time.Location) (time.Time, error) {
	return timeAt(o, cd, "dawn", depression.zenith(), Rising, loc)
}

// Sunrise returns the time at which the upper limb of the sun rises
// above the horizon.
func Sunrise(o Observer, cd datetime.CalendarDate, loc *time.Location) (time.Time, error) {
	return timeAt(o, cd, "sunrise", 90+SunApparentRadius, Rising, loc)
}

// Sunset returns the time at which the upper limb of the sun sets
// below the horizon.
func Sunset(o Observer, cd datetime.CalendarDate, loc *time.Location) (time.Time, error) {
	return timeAt(o, cd, "sunset", 90+SunApparentRadius, Setting, loc)
}

// Dusk returns the time in the evening when the sun is the specified
// depression below the horizon.
func Dusk(o Observer, cd datetime.CalendarDate, depression Depression, loc *time.Location) (time.Time, error) {
	return timeAt(o, cd, "dusk", depression.zenith(), Setting, loc)
}

// TimeAtElevation returns the time at which the sun is at the specified
// elevation, in degrees above the horizon. Elevations greater than 90
// refer to a setting sun, ie. an elevation of 110 is treated as 70
// degrees with the sun setting.
func TimeAtElevation(o Observer, cd datetime.CalendarDate, elevation float64, dir Direction, loc *time.Location) (time.Time, error) {
	if elevation > 90 {
		elevation = 180 - elevation
		dir = Setting
	}
	return timeAt(o, cd, "elevation", 90-elevation, dir, loc)
}

func interval(o Observer, cd datetime.CalendarDate, event string, z1, z2 float64, dir Direction, loc *time.Location) (Interval, error) {
	t1, err := timeAt(o, cd, event, z1, dir, loc)
	if err != nil {
		return Interval{}, err
	}
	t2, err := timeAt(o, cd, event, z2, dir, loc)
	if err != nil {
		return Interval{}, err
	}
	if dir == Rising {
		return Interval{Start: t1, End: t2}, nil
	}
	return Interval{Start: t2, End: t1}, nil
}

// Daylight returns the interval from sunrise to sunset.
func Daylight(o Observer, cd datetime.CalendarDate, loc *time.Location) (Interval, error) {
	start, err := Sunrise(o, cd, loc)
	if err != nil {
		return Interval{}, err
	}
	end, err := Sunset(o, cd, loc)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// Night returns the interval from civil dusk on the specified date to
// civil dawn on the following day.
func Night(o Observer, cd datetime.CalendarDate, loc *time.Location) (Interval, error) {
	start, err := Dusk(o, cd, Civil, loc)
	if err != nil {
		return Interval{}, err
	}
	end, err := Dawn(o, cd.Tomorrow(), Civil, loc)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// Twilight returns the interval between the sun being 6 degrees below
// the horizon and sunrise, or sunset, depending on direction.
func Twilight(o Observer, cd datetime.CalendarDate, dir Direction, loc *time.Location) (Interval, error) {
	return interval(o, cd, "twilight", Civil.zenith(), 90+SunApparentRadius, dir, loc)
}

// GoldenHour returns the interval when the sun is between 4 degrees
// below the horizon and 6 degrees above.
func GoldenHour(o Observer, cd datetime.CalendarDate, dir Direction, loc *time.Location) (Interval, error) {
	return interval(o, cd, "golden hour", 94, 84, dir, loc)
}

// BlueHour returns the interval when the sun is between 6 and 4 degrees
// below the horizon.
func BlueHour(o Observer, cd datetime.CalendarDate, dir Direction, loc *time.Location) (Interval, error) {
	return interval(o, cd, "blue hour", 96, 94, dir, loc)
}

// rahukaalamOctants is indexed by day of the week starting with Monday.
var rahukaalamOctants = [7]int{1, 6, 4, 5, 3, 2, 7}

// RahukaalamOctant returns the octant, in the range 1-7, of the day (or
// night) that Rahukaalam occupies on the specified weekday.
func RahukaalamOctant(weekday time.Weekday) int {
	return rahukaalamOctants[(int(weekday)+6)%7]
}

// Rahukaalam returns the Rahukaalam interval for the specified date. If
// daytime is true the period from sunrise to sunset is divided into
// eight octants, otherwise the period from sunset to the next day's
// sunrise is used. The octant used is determined by the day of the
// week.
func Rahukaalam(o Observer, cd datetime.CalendarDate, daytime bool, loc *time.Location) (Interval, error) {
	var period Interval
	if daytime {
		d, err := Daylight(o, cd, loc)
		if err != nil {
			return Interval{}, err
		}
		period = d
	} else {
		start, err := Sunset(o, cd, loc)
		if err != nil {
			return Interval{}, err
		}
		end, err := Sunrise(o, cd.Tomorrow(), loc)
		if err != nil {
			return Interval{}, err
		}
		period = Interval{Start: start, End: end}
	}
	octant := period.Duration() / 8
	start := period.Start.Add(octant * time.Duration(RahukaalamOctant(cd.Weekday())))
	return Interval{Start: start, End: start.Add(octant)}, nil
}
