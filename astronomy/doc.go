// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides the low level formulas used to compute the
// position of the sun: Julian day conversions, the solar geometry chain
// (mean longitude and anomaly through to declination and the equation of
// time), hour angles, atmospheric refraction and corrections for the
// observer's elevation. The solar formulas are those published by NOAA
// and are functions of the Julian century, ie. the number of centuries
// since J2000.0. Angles are in degrees unless the name of a function
// states otherwise.
//
// The package also provides the dates of the equinoxes and solstices.
package astronomy
