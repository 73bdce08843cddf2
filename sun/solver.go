// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sun

import (
	"math"
	"time"

	"cloudeng.io/astral/astronomy"
	"cloudeng.io/astral/datetime"
)

// elevationAdjustment returns the number of degrees to add to a zenith
// to account for the observer's elevation or an obscuring feature.
func (o Observer) elevationAdjustment() float64 {
	switch {
	case o.DistanceToFeature > 0:
		return astronomy.ObscuringFeatureAdjustment(o.Elevation, o.DistanceToFeature)
	case o.Elevation > 0:
		return astronomy.HorizonDip(o.Elevation)
	}
	return 0
}

// TimeAtZenith returns the time, in UTC, on the specified date at which
// the sun crosses the specified zenith while travelling in the specified
// direction. The time is refined in two passes: the first uses the sun's
// declination at the start of the day and the second the declination at
// the time found by the first. An error that matches
// ErrElevationNeverReached is returned if the sun never reaches the
// zenith.
func TimeAtZenith(o Observer, cd datetime.CalendarDate, zenith float64, dir Direction) (time.Time, error) {
	latitude := astronomy.ClampLatitude(o.Latitude)
	adjustment := o.elevationAdjustment()
	refraction := astronomy.RefractionAtZenith(zenith + adjustment)

	jc := astronomy.JulianDayToCentury(astronomy.JulianDay(cd))
	minutes, ok := utcMinutes(latitude, o.Longitude, jc, zenith+adjustment-refraction, dir)
	if !ok {
		return time.Time{}, &ElevationError{Event: "zenith", Zenith: zenith, Date: cd}
	}

	jc = astronomy.JulianDayToCentury(astronomy.JulianCenturyToDay(jc) + minutes/1440)
	minutes, ok = utcMinutes(latitude, o.Longitude, jc, zenith+adjustment+refraction, dir)
	if !ok {
		return time.Time{}, &ElevationError{Event: "zenith", Zenith: zenith, Date: cd}
	}
	return fromUTCHours(cd, minutes/60), nil
}

// utcMinutes returns the number of minutes after 00:00 UTC at which the
// sun crosses zenith for the declination and equation of time at jc.
func utcMinutes(latitude, longitude, jc, zenith float64, dir Direction) (float64, bool) {
	ha := astronomy.HourAngle(latitude, astronomy.Declination(jc), zenith, dir)
	if math.IsNaN(ha) {
		return 0, false
	}
	delta := -longitude - astronomy.Degrees(ha)
	return 720 + 4*delta - astronomy.EquationOfTime(jc), true
}

// fromUTCHours returns the instant that is the specified, possibly
// negative or greater than 24, number of hours after 00:00 UTC on cd.
// The hours are split into whole hours, minutes and seconds which are
// normalized with an explicit carry into the day.
func fromUTCHours(cd datetime.CalendarDate, utcHours float64) time.Time {
	hours := int(math.Floor(utcHours))
	minutes := int(math.Floor((utcHours - float64(hours)) * 60))
	seconds := int(math.Floor(((utcHours-float64(hours))*60 - float64(minutes)) * 60))

	if seconds > 59 {
		seconds -= 60
		minutes++
	} else if seconds < 0 {
		seconds += 60
		minutes--
	}
	if minutes > 59 {
		minutes -= 60
		hours++
	} else if minutes < 0 {
		minutes += 60
		hours--
	}
	days := 0
	for hours > 23 {
		hours -= 24
		days++
	}
	for hours < 0 {
		hours += 24
		days--
	}
	return cd.AddDays(days).Time(datetime.NewTimeOfDay(hours, minutes, seconds), time.UTC)
}
