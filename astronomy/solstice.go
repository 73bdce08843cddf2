// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"
	"time"

	"cloudeng.io/astral/datetime"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// Season represents one of the equinoxes or solstices.
type Season struct {
	Name string
	Date datetime.CalendarDate
	// Instant is approximate to within a minute or two since the
	// difference between dynamical and universal time is ignored.
	Instant time.Time
}

var seasons = [...]struct {
	name string
	jde  func(year int) float64
}{
	{"March equinox", solstice.March},
	{"June solstice", solstice.June},
	{"September equinox", solstice.September},
	{"December solstice", solstice.December},
}

var j2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Seasons returns the equinoxes and solstices for the specified year in
// chronological order.
func Seasons(year int) []Season {
	s := make([]Season, len(seasons))
	for i, e := range seasons {
		days, frac := math.Modf(e.jde(year) - J2000)
		t := j2000.AddDate(0, 0, int(days)).Add(time.Duration(frac * 24 * float64(time.Hour))).Truncate(time.Second)
		s[i] = Season{Name: e.name, Date: datetime.CalendarDateFromTime(t), Instant: t}
	}
	return s
}
