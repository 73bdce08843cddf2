// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sun

import (
	"time"

	"cloudeng.io/astral/astronomy"
)

// Zenith returns the angle, in degrees, between the point directly above
// the observer and the sun at the instant when, optionally corrected for
// atmospheric refraction.
func Zenith(o Observer, when time.Time, refraction bool) float64 {
	z, _ := astronomy.ZenithAndAzimuth(o.Latitude, o.Longitude, when, refraction)
	return z
}

// Azimuth returns the direction of the sun, in degrees clockwise from
// north, at the instant when.
func Azimuth(o Observer, when time.Time) float64 {
	_, a := astronomy.ZenithAndAzimuth(o.Latitude, o.Longitude, when, true)
	return a
}

// Elevation returns the angle of the sun above the horizon at the
// instant when.
func Elevation(o Observer, when time.Time, refraction bool) float64 {
	return 90 - Zenith(o, when, refraction)
}

// Position represents the sun's position in the sky.
type Position struct {
	Zenith    float64 `json:"zenith" yaml:"zenith"`
	Azimuth   float64 `json:"azimuth" yaml:"azimuth"`
	Elevation float64 `json:"elevation" yaml:"elevation"`
}

// PositionAt returns the sun's position at the instant when.
func PositionAt(o Observer, when time.Time, refraction bool) Position {
	z, a := astronomy.ZenithAndAzimuth(o.Latitude, o.Longitude, when, refraction)
	return Position{Zenith: z, Azimuth: a, Elevation: 90 - z}
}
