// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sun

import (
	"fmt"

	"cloudeng.io/astral/datetime"
	"cloudeng.io/errors"
)

var (
	// ErrElevationNeverReached is returned when the sun never reaches the
	// requested zenith on the requested date at the observer's location.
	ErrElevationNeverReached = errors.New("sun never reaches the requested elevation")

	// ErrSunAlwaysAbove is returned, in addition to
	// ErrElevationNeverReached, when the sun remains above the requested
	// elevation for the entire day.
	ErrSunAlwaysAbove = errors.New("sun is always above the requested elevation")

	// ErrSunAlwaysBelow is returned, in addition to
	// ErrElevationNeverReached, when the sun remains below the requested
	// elevation for the entire day.
	ErrSunAlwaysBelow = errors.New("sun is always below the requested elevation")
)

// ElevationError is returned when an event does not occur on a given
// date. It matches ErrElevationNeverReached and, when the reason is
// known, one of ErrSunAlwaysAbove or ErrSunAlwaysBelow when used with
// errors.Is.
type ElevationError struct {
	Event  string
	Zenith float64
	Date   datetime.CalendarDate
	Reason error // nil, ErrSunAlwaysAbove or ErrSunAlwaysBelow.
}

func (e *ElevationError) Error() string {
	elevation := 90 - e.Zenith
	if e.Reason != nil {
		return fmt.Sprintf("%v: %v: %v (%.4f degrees) on this day at this location", e.Date, e.Event, e.Reason, elevation)
	}
	return fmt.Sprintf("%v: %v: %v (%.4f degrees) on this day at this location", e.Date, e.Event, ErrElevationNeverReached, elevation)
}

// Is supports errors.Is.
func (e *ElevationError) Is(target error) bool {
	return target == ErrElevationNeverReached || (e.Reason != nil && target == e.Reason)
}
