// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"fmt"
	"math"
	"strings"
)

// Direction specifies whether the sun is rising or setting when it
// crosses a given zenith.
type Direction int

const (
	Rising Direction = iota
	Setting
)

func (d Direction) String() string {
	switch d {
	case Rising:
		return "rising"
	case Setting:
		return "setting"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Parse parses "rising" or "setting", or the abbreviations "rise" and "set".
func (d *Direction) Parse(val string) error {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "rising", "rise", "morning":
		*d = Rising
	case "setting", "set", "evening":
		*d = Setting
	default:
		return fmt.Errorf("invalid direction %q, expected rising or setting", val)
	}
	return nil
}

// HourAngle returns the hour angle, in radians, at which the sun crosses
// the specified zenith for an observer at the given latitude when the sun
// has the given declination. The result is negative for a setting sun.
// NaN is returned when the sun never reaches the zenith.
func HourAngle(latitude, declination, zenith float64, dir Direction) float64 {
	lat := Radians(latitude)
	dec := Radians(declination)
	z := Radians(zenith)
	h := (math.Cos(z) - math.Sin(lat)*math.Sin(dec)) / (math.Cos(lat) * math.Cos(dec))
	if h < -1 || h > 1 || math.IsNaN(h) {
		return math.NaN()
	}
	ha := math.Acos(h)
	if dir == Setting {
		return -ha
	}
	return ha
}
