// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sun

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/astral/astronomy"
)

// Observer represents a position on the earth's surface from which the
// sun is observed.
type Observer struct {
	// Latitude in degrees, positive to the north.
	Latitude float64 `yaml:"latitude"`
	// Longitude in degrees, positive to the east.
	Longitude float64 `yaml:"longitude"`
	// Elevation is the height of the observer above the horizon, in
	// meters, or, when DistanceToFeature is non-zero, the height of an
	// obscuring feature relative to the observer.
	Elevation float64 `yaml:"elevation"`
	// DistanceToFeature is the distance in meters to a feature, such as
	// a mountain range, that obscures the horizon.
	DistanceToFeature float64 `yaml:"distance_to_feature"`
}

// Greenwich is the observer used when none is specified.
var Greenwich = Observer{Latitude: 51.4733, Longitude: -0.0008333}

func (o Observer) String() string {
	return fmt.Sprintf("%.6f,%.6f", o.Latitude, o.Longitude)
}

// Direction is the direction the sun is travelling in when crossing
// a zenith.
type Direction = astronomy.Direction

const (
	Rising  = astronomy.Rising
	Setting = astronomy.Setting
)

// SunApparentRadius is half the sun's apparent diameter in degrees.
// Sunrise and sunset occur when the upper limb touches the horizon.
const SunApparentRadius = 32.0 / (60.0 * 2.0)

// Depression is the number of degrees the sun is below the horizon,
// used to define dawn and dusk.
type Depression float64

const (
	Civil        Depression = 6
	Nautical     Depression = 12
	Astronomical Depression = 18
)

func (d Depression) String() string {
	switch d {
	case Civil:
		return "civil"
	case Nautical:
		return "nautical"
	case Astronomical:
		return "astronomical"
	}
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

// Parse parses one of civil, nautical or astronomical, or a positive
// number of degrees.
func (d *Depression) Parse(val string) error {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "civil":
		*d = Civil
		return nil
	case "nautical":
		*d = Nautical
		return nil
	case "astronomical":
		*d = Astronomical
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f <= 0 || f >= 90 {
		return fmt.Errorf("invalid depression %q: expected civil, nautical, astronomical or degrees in (0, 90)", val)
	}
	*d = Depression(f)
	return nil
}

// zenith returns the zenith that corresponds to the depression.
func (d Depression) zenith() float64 {
	return 90 + float64(d)
}
