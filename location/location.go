// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package location

import (
	"fmt"
	"time"

	"cloudeng.io/astral/datetime"
	"cloudeng.io/astral/moon"
	"cloudeng.io/astral/sun"
)

// Location provides access to the solar and lunar events for a named
// location. Results are returned in the location's timezone when local
// is true and in UTC otherwise.
type Location struct {
	Info
	// SolarDepression is used by Dawn and Dusk.
	SolarDepression sun.Depression
}

// New returns a Location for the supplied Info with civil twilight
// as the solar depression.
func New(info Info) *Location {
	return &Location{Info: info, SolarDepression: sun.Civil}
}

// ErrUnknownTimezone is returned when local times are requested for a
// location whose timezone cannot be found.
type ErrUnknownTimezone struct {
	Timezone string
}

func (e ErrUnknownTimezone) Error() string {
	return fmt.Sprintf("unknown timezone: %q", e.Timezone)
}

// Zone returns the location's timezone when local is true and UTC
// otherwise.
func (l *Location) Zone(local bool) (*time.Location, error) {
	if !local {
		return time.UTC, nil
	}
	tz, ok := l.TimeLocation()
	if !ok {
		return nil, ErrUnknownTimezone{Timezone: l.Timezone}
	}
	return tz, nil
}

func (l *Location) depression() sun.Depression {
	if l.SolarDepression == 0 {
		return sun.Civil
	}
	return l.SolarDepression
}

// Today returns the current date in the location's timezone, or in UTC
// if the timezone is unknown.
func (l *Location) Today(now time.Time) datetime.CalendarDate {
	tz, ok := l.TimeLocation()
	if !ok {
		tz = time.UTC
	}
	return datetime.Today(now, tz)
}

func (l *Location) Noon(cd datetime.CalendarDate, local bool) (time.Time, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return time.Time{}, err
	}
	return sun.Noon(l.Observer(), cd, tz), nil
}

func (l *Location) Midnight(cd datetime.CalendarDate, local bool) (time.Time, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return time.Time{}, err
	}
	return sun.Midnight(l.Observer(), cd, tz), nil
}

func (l *Location) Dawn(cd datetime.CalendarDate, local bool) (time.Time, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return time.Time{}, err
	}
	return sun.Dawn(l.Observer(), cd, l.depression(), tz)
}

func (l *Location) Sunrise(cd datetime.CalendarDate, local bool) (time.Time, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return time.Time{}, err
	}
	return sun.Sunrise(l.Observer(), cd, tz)
}

func (l *Location) Sunset(cd datetime.CalendarDate, local bool) (time.Time, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return time.Time{}, err
	}
	return sun.Sunset(l.Observer(), cd, tz)
}

func (l *Location) Dusk(cd datetime.CalendarDate, local bool) (time.Time, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return time.Time{}, err
	}
	return sun.Dusk(l.Observer(), cd, l.depression(), tz)
}

// TimeAtElevation returns the time at which the sun reaches the
// specified elevation, in degrees, when rising or setting.
func (l *Location) TimeAtElevation(cd datetime.CalendarDate, elevation float64, dir sun.Direction, local bool) (time.Time, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return time.Time{}, err
	}
	return sun.TimeAtElevation(l.Observer(), cd, elevation, dir, tz)
}

func (l *Location) Daylight(cd datetime.CalendarDate, local bool) (sun.Interval, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return sun.Interval{}, err
	}
	return sun.Daylight(l.Observer(), cd, tz)
}

func (l *Location) Night(cd datetime.CalendarDate, local bool) (sun.Interval, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return sun.Interval{}, err
	}
	return sun.Night(l.Observer(), cd, tz)
}

func (l *Location) Twilight(cd datetime.CalendarDate, dir sun.Direction, local bool) (sun.Interval, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return sun.Interval{}, err
	}
	return sun.Twilight(l.Observer(), cd, dir, tz)
}

func (l *Location) GoldenHour(cd datetime.CalendarDate, dir sun.Direction, local bool) (sun.Interval, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return sun.Interval{}, err
	}
	return sun.GoldenHour(l.Observer(), cd, dir, tz)
}

func (l *Location) BlueHour(cd datetime.CalendarDate, dir sun.Direction, local bool) (sun.Interval, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return sun.Interval{}, err
	}
	return sun.BlueHour(l.Observer(), cd, dir, tz)
}

func (l *Location) Rahukaalam(cd datetime.CalendarDate, daytime, local bool) (sun.Interval, error) {
	tz, err := l.Zone(local)
	if err != nil {
		return sun.Interval{}, err
	}
	return sun.Rahukaalam(l.Observer(), cd, daytime, tz)
}

// Position returns the position of the sun at the specified instant.
func (l *Location) Position(when time.Time, refraction bool) sun.Position {
	return sun.PositionAt(l.Observer(), when, refraction)
}

// MoonPhase returns the phase of the moon on the specified date.
func (l *Location) MoonPhase(cd datetime.CalendarDate) float64 {
	return moon.Phase(cd)
}
