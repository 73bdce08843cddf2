// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sun computes the times of solar events, such as dawn, sunrise,
// noon, sunset and dusk, and of intervals such as twilight, the golden
// and blue hours, and Rahukaalam, for an Observer on a given date.
//
// All functions are pure and safe for concurrent use. Times are computed
// in UTC and returned in the requested location, a nil location is
// treated as UTC. Events that do not occur on the requested date, for
// example sunrise during the polar night, return an error that matches
// ErrElevationNeverReached and one of ErrSunAlwaysAbove or
// ErrSunAlwaysBelow.
//
//	london := sun.Observer{Latitude: 51.50853, Longitude: -0.12574}
//	rise, err := sun.Sunrise(london, datetime.NewCalendarDate(2015, 12, 1), nil)
package sun
