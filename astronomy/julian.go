// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"
	"time"

	"cloudeng.io/astral/datetime"
	"github.com/soniakeys/unit"
)

const (
	// J2000 is the Julian day of the J2000.0 epoch.
	J2000 = 2451545.0
	// DaysPerCentury is the number of days in a Julian century.
	DaysPerCentury = 36525.0
)

// JulianDay returns the Julian day for 00:00 UTC on the specified
// proleptic Gregorian date.
func JulianDay(cd datetime.CalendarDate) float64 {
	y, m, d := float64(cd.Year()), float64(cd.Month()), float64(cd.Day())
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5
}

// JulianDayForTime returns the Julian day, including the fraction of the
// day, for the specified instant.
func JulianDayForTime(t time.Time) float64 {
	t = t.UTC()
	frac := (float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600) / 24
	return JulianDay(datetime.CalendarDateFromTime(t)) + frac
}

// JulianDayToCentury converts a Julian day to a Julian century.
func JulianDayToCentury(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// JulianCenturyToDay converts a Julian century to a Julian day.
func JulianCenturyToDay(jc float64) float64 {
	return jc*DaysPerCentury + J2000
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return unit.AngleFromDeg(deg).Rad()
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return unit.Angle(rad).Deg()
}

// ProperAngle reduces an angle in degrees to the range [0, 360).
func ProperAngle(deg float64) float64 {
	return unit.PMod(deg, 360)
}

// MaxLatitude is the largest absolute latitude used in calculations,
// larger values lead to divisions by values close to zero.
const MaxLatitude = 89.8

// ClampLatitude limits the latitude used for calculations to
// +/- MaxLatitude.
func ClampLatitude(lat float64) float64 {
	return max(-MaxLatitude, min(MaxLatitude, lat))
}

func clamp(v, limit float64) float64 {
	return max(-limit, min(limit, v))
}
