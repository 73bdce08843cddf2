// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import "math"

// GeometricMeanLongitude returns the geometric mean longitude of the sun
// for the Julian century jc, in the range [0, 360).
func GeometricMeanLongitude(jc float64) float64 {
	return ProperAngle(280.46646 + jc*(36000.76983+0.0003032*jc))
}

// GeometricMeanAnomaly returns the geometric mean anomaly of the sun. The
// value is not reduced to [0, 360).
func GeometricMeanAnomaly(jc float64) float64 {
	return 357.52911 + jc*(35999.05029-0.0001537*jc)
}

// EarthOrbitEccentricity returns the eccentricity of the earth's orbit.
func EarthOrbitEccentricity(jc float64) float64 {
	return 0.016708634 - jc*(0.000042037+0.0000001267*jc)
}

// EquationOfCenter returns the sun's equation of center.
func EquationOfCenter(jc float64) float64 {
	m := Radians(GeometricMeanAnomaly(jc))
	sinm := math.Sin(m)
	sin2m := math.Sin(2 * m)
	sin3m := math.Sin(3 * m)
	return sinm*(1.914602-jc*(0.004817+0.000014*jc)) +
		sin2m*(0.019993-0.000101*jc) +
		sin3m*0.000289
}

// TrueLongitude returns the sun's true longitude.
func TrueLongitude(jc float64) float64 {
	return GeometricMeanLongitude(jc) + EquationOfCenter(jc)
}

// TrueAnomaly returns the sun's true anomaly.
func TrueAnomaly(jc float64) float64 {
	return GeometricMeanAnomaly(jc) + EquationOfCenter(jc)
}

// RadiusVector returns the distance to the sun in astronomical units.
func RadiusVector(jc float64) float64 {
	v := Radians(TrueAnomaly(jc))
	e := EarthOrbitEccentricity(jc)
	return (1.000001018 * (1 - e*e)) / (1 + e*math.Cos(v))
}

func omega(jc float64) float64 {
	return Radians(125.04 - 1934.136*jc)
}

// ApparentLongitude returns the sun's true longitude corrected for
// nutation and aberration.
func ApparentLongitude(jc float64) float64 {
	return TrueLongitude(jc) - 0.00569 - 0.00478*math.Sin(omega(jc))
}

// MeanObliquityOfEcliptic returns the mean obliquity of the ecliptic.
func MeanObliquityOfEcliptic(jc float64) float64 {
	seconds := 21.448 - jc*(46.815+jc*(0.00059-jc*(0.001813)))
	return 23.0 + (26.0+(seconds/60.0))/60.0
}

// ObliquityCorrection returns the obliquity of the ecliptic corrected for
// nutation.
func ObliquityCorrection(jc float64) float64 {
	return MeanObliquityOfEcliptic(jc) + 0.00256*math.Cos(omega(jc))
}

// RightAscension returns the sun's right ascension in degrees, in the
// range (-180, 180].
func RightAscension(jc float64) float64 {
	oc := Radians(ObliquityCorrection(jc))
	al := Radians(ApparentLongitude(jc))
	return Degrees(math.Atan2(math.Cos(oc)*math.Sin(al), math.Cos(al)))
}

// Declination returns the sun's declination.
func Declination(jc float64) float64 {
	e := Radians(ObliquityCorrection(jc))
	lambda := Radians(ApparentLongitude(jc))
	return Degrees(math.Asin(math.Sin(e) * math.Sin(lambda)))
}

// EquationOfTime returns the difference, in minutes, between apparent
// solar time and mean solar time.
func EquationOfTime(jc float64) float64 {
	epsilon := ObliquityCorrection(jc)
	l0 := Radians(GeometricMeanLongitude(jc))
	e := EarthOrbitEccentricity(jc)
	m := Radians(GeometricMeanAnomaly(jc))

	y := math.Tan(Radians(epsilon) / 2)
	y *= y

	sin2l0 := math.Sin(2 * l0)
	sinm := math.Sin(m)
	cos2l0 := math.Cos(2 * l0)
	sin4l0 := math.Sin(4 * l0)
	sin2m := math.Sin(2 * m)

	etime := y*sin2l0 - 2*e*sinm + 4*e*y*sinm*cos2l0 -
		0.5*y*y*sin4l0 - 1.25*e*e*sin2m
	return Degrees(etime) * 4
}
