// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import "math"

// EarthRadius is the radius, in meters, of the sphere used to compute
// the dip of the horizon for an elevated observer.
const EarthRadius = 6356900.0

// RefractionAtZenith returns the atmospheric refraction, in degrees, for
// the sun at the specified geometric zenith. The refraction is to be
// subtracted from the geometric zenith to obtain the apparent zenith.
func RefractionAtZenith(zenith float64) float64 {
	elevation := 90 - zenith
	if elevation >= 85 {
		return 0
	}
	var correction float64
	te := math.Tan(Radians(elevation))
	switch {
	case elevation > 5:
		correction = 58.1/te - 0.07/(te*te*te) + 0.000086/(te*te*te*te*te)
	case elevation > -0.575:
		e := elevation
		correction = 1735 + e*(-518.2+e*(103.4+e*(-12.79+e*0.711)))
	default:
		correction = -20.774 / te
	}
	return correction / 3600
}

// HorizonDip returns the additional depression of the horizon, in
// degrees, visible to an observer at the specified elevation in meters.
// Zero is returned for elevations at or below sea level.
func HorizonDip(elevation float64) float64 {
	if elevation <= 0 {
		return 0
	}
	return Degrees(math.Acos(EarthRadius / (EarthRadius + elevation)))
}

// ObscuringFeatureAdjustment returns the adjustment to the zenith, in
// degrees, when the sun is obscured by a feature of the given height
// (relative to the observer) at the given distance, both in meters.
// The sign of the result follows the sign of the height.
func ObscuringFeatureAdjustment(elevation, distance float64) float64 {
	if elevation == 0 {
		return 0
	}
	sign := 1.0
	if elevation < 0 {
		sign = -1
	}
	return sign * Degrees(math.Acos(math.Abs(elevation)/math.Hypot(elevation, distance)))
}
