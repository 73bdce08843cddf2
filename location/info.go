// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package location provides named locations, with a timezone, for use
// with the sun and moon packages as well as parsing of angles and
// timezone names.
package location

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // timezones are needed on systems without zoneinfo.

	"cloudeng.io/astral/sun"
)

// Timezone returns the location for the specified IANA timezone name.
// UTC is always available. False is returned if the name is not known,
// in which case no fallback location is provided.
func Timezone(name string) (*time.Location, bool) {
	switch strings.TrimSpace(name) {
	case "UTC", "utc", "Etc/UTC":
		return time.UTC, true
	case "", "Local", "local":
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// Info represents a named location.
type Info struct {
	Name      string  `yaml:"name" json:"name"`
	Region    string  `yaml:"region" json:"region"`
	Timezone  string  `yaml:"timezone" json:"timezone"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
	Elevation float64 `yaml:"elevation,omitempty" json:"elevation,omitempty"`
}

// Greenwich is the default location.
var Greenwich = Info{
	Name:      "Greenwich",
	Region:    "England",
	Timezone:  "Europe/London",
	Latitude:  sun.Greenwich.Latitude,
	Longitude: sun.Greenwich.Longitude,
}

// NewInfo creates a new Info with the latitude and longitude specified
// either as decimal degrees or in the forms accepted by ParseDMS.
func NewInfo(name, region, timezone, latitude, longitude string) (Info, error) {
	lat, err := ParseLatitude(latitude)
	if err != nil {
		return Info{}, fmt.Errorf("%v: latitude: %w", name, err)
	}
	long, err := ParseLongitude(longitude)
	if err != nil {
		return Info{}, fmt.Errorf("%v: longitude: %w", name, err)
	}
	return Info{
		Name:      name,
		Region:    region,
		Timezone:  timezone,
		Latitude:  lat,
		Longitude: long,
	}, nil
}

// Observer returns the Observer for the location.
func (i Info) Observer() sun.Observer {
	return sun.Observer{Latitude: i.Latitude, Longitude: i.Longitude, Elevation: i.Elevation}
}

// TimezoneGroup returns the first component of the timezone name, eg.
// Europe for Europe/London.
func (i Info) TimezoneGroup() string {
	group, _, _ := strings.Cut(i.Timezone, "/")
	return group
}

// TimeLocation returns the location for the Info's timezone.
func (i Info) TimeLocation() (*time.Location, bool) {
	return Timezone(i.Timezone)
}

func (i Info) String() string {
	return fmt.Sprintf("%v/%v, tz=%v, lat=%.02f, lon=%.02f", i.Name, i.Region, i.Timezone, i.Latitude, i.Longitude)
}
