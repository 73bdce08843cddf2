// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command astral reports the times of solar events, the position of the
// sun and the phase of the moon for named or arbitrary locations.
package main

import (
	"context"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: astral
summary: solar and lunar events for a location
commands:
  - name: sun
    summary: display the times of the solar events for a single date
  - name: position
    summary: display the position of the sun at a specific time
  - name: moon
    summary: display the phase of the moon for a date
  - name: range
    summary: display the times of solar events for a range of dates
  - name: ical
    summary: write the times of solar events for a range of dates as an iCalendar file
  - name: seasons
    summary: display the equinoxes and solstices for one or more years
    arguments:
      - "[year]"
  - name: lookup
    summary: display the named locations matching the supplied name
    arguments:
      - <name[,region]>
      - ...
`

// app holds the state shared by all commands.
type app struct {
	out io.Writer
	now func() time.Time
}

func newCommandSet(a *app) *subcmd.CommandSetYAML {
	cs := subcmd.MustFromYAML(commands)
	cs.Set("sun").MustRunnerAndFlags(a.sun,
		subcmd.MustRegisteredFlagSet(&sunFlags{}))
	cs.Set("position").MustRunnerAndFlags(a.position,
		subcmd.MustRegisteredFlagSet(&positionFlags{}))
	cs.Set("moon").MustRunnerAndFlags(a.moon,
		subcmd.MustRegisteredFlagSet(&moonFlags{}))
	cs.Set("range").MustRunnerAndFlags(a.rangeEvents,
		subcmd.MustRegisteredFlagSet(&rangeFlags{}))
	cs.Set("ical").MustRunnerAndFlags(a.ical,
		subcmd.MustRegisteredFlagSet(&icalFlags{}))
	cs.Set("seasons").MustRunnerAndFlags(a.seasons,
		subcmd.MustRegisteredFlagSet(&seasonsFlags{}))
	cs.Set("lookup").MustRunnerAndFlags(a.lookup,
		subcmd.MustRegisteredFlagSet(&lookupFlags{}))
	return cs
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(&app{out: os.Stdout, now: time.Now}))
}
