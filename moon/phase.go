// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package moon provides the phase of the moon for a given date.
package moon

import (
	"fmt"
	"math"
	"time"

	"cloudeng.io/astral/astronomy"
	"cloudeng.io/astral/datetime"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonillum"
)

// Phase returns the phase of the moon on the specified date as a value
// in the range [0, 28):
//
//	0 .. 6.99    New moon
//	7 .. 13.99   First quarter
//	14 .. 20.99  Full moon
//	21 .. 27.99  Last quarter
func Phase(cd datetime.CalendarDate) float64 {
	jd := astronomy.JulianDay(cd)
	dt := math.Pow(jd-2382148, 2) / (41048480 * 86400)
	t := (jd + dt - astronomy.J2000) / astronomy.DaysPerCentury
	t2 := t * t
	t3 := t2 * t

	d := astronomy.Radians(astronomy.ProperAngle(297.85 + 445267.1115*t - 0.00163*t2 + t3/545868))
	m := astronomy.Radians(astronomy.ProperAngle(357.53 + 35999.0503*t))
	m1 := astronomy.Radians(astronomy.ProperAngle(134.96 + 477198.8676*t + 0.008997*t2 + t3/69699))

	elong := astronomy.Degrees(d) + 6.29*math.Sin(m1) - 2.10*math.Sin(m) +
		1.27*math.Sin(2*d-m1) + 0.66*math.Sin(2*d)
	elong = math.Trunc(astronomy.ProperAngle(elong))
	return math.Mod((elong+6.43)/360*28, 28)
}

// PhaseName represents one of the four principal phases of the moon.
type PhaseName int

const (
	New PhaseName = iota
	FirstQuarter
	Full
	LastQuarter
)

func (p PhaseName) String() string {
	switch p {
	case New:
		return "new moon"
	case FirstQuarter:
		return "first quarter"
	case Full:
		return "full moon"
	case LastQuarter:
		return "last quarter"
	}
	return fmt.Sprintf("PhaseName(%d)", int(p))
}

// NameForPhase returns the principal phase for a value returned by Phase.
func NameForPhase(phase float64) PhaseName {
	switch {
	case phase < 7:
		return New
	case phase < 14:
		return FirstQuarter
	case phase < 21:
		return Full
	}
	return LastQuarter
}

// Illumination returns the fraction, in the range [0, 1], of the moon's
// disc that is illuminated at the specified instant.
func Illumination(t time.Time) float64 {
	jde := julian.TimeToJD(t.UTC())
	return base.Illuminated(moonillum.PhaseAngle3(jde))
}
