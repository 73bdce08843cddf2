// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"
	"time"
)

// ZenithAndAzimuth returns the zenith and azimuth, in degrees, of the sun
// as seen by an observer at the specified latitude and longitude at the
// instant when. The azimuth is measured clockwise from north and is in
// the range [0, 360). If refraction is true the zenith is corrected for
// atmospheric refraction.
func ZenithAndAzimuth(latitude, longitude float64, when time.Time, refraction bool) (zenith, azimuth float64) {
	latitude = ClampLatitude(latitude)
	_, offset := when.Zone()
	zone := -float64(offset) / 3600

	jc := JulianDayToCentury(JulianDayForTime(when))
	dec := Declination(jc)
	eqt := EquationOfTime(jc)

	solarTimeFix := eqt + 4*longitude + 60*zone
	trueSolarTime := float64(when.Hour())*60 + float64(when.Minute()) +
		float64(when.Second())/60 + solarTimeFix
	for trueSolarTime > 1440 {
		trueSolarTime -= 1440
	}

	ha := trueSolarTime/4 - 180
	if ha < -180 {
		ha += 360
	}

	latRad, decRad := Radians(latitude), Radians(dec)
	csz := math.Sin(latRad)*math.Sin(decRad) +
		math.Cos(latRad)*math.Cos(decRad)*math.Cos(Radians(ha))
	zenith = Degrees(math.Acos(clamp(csz, 1)))

	azDenom := math.Cos(latRad) * math.Sin(Radians(zenith))
	if math.Abs(azDenom) > 0.001 {
		azRad := (math.Sin(latRad)*math.Cos(Radians(zenith)) - math.Sin(decRad)) / azDenom
		azimuth = 180 - Degrees(math.Acos(clamp(azRad, 1)))
		if ha > 0 {
			azimuth = -azimuth
		}
	} else {
		if latitude > 0 {
			azimuth = 180
		} else {
			azimuth = 0
		}
	}
	if azimuth < 0 {
		azimuth += 360
	}

	if refraction {
		zenith -= RefractionAtZenith(zenith)
	}
	return zenith, azimuth
}
