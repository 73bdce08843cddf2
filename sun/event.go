// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sun

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/astral/datetime"
)

// Event represents a named solar event that occurs at most once on
// any given date.
type Event interface {
	Name() string
	Evaluate(o Observer, cd datetime.CalendarDate, loc *time.Location) (time.Time, error)
}

// SolarNoon implements Event for solar noon.
type SolarNoon struct{}

func (SolarNoon) Name() string {
	return "noon"
}

func (SolarNoon) Evaluate(o Observer, cd datetime.CalendarDate, loc *time.Location) (time.Time, error) {
	return Noon(o, cd, loc), nil
}

// SolarMidnight implements Event for solar midnight.
type SolarMidnight struct{}

func (SolarMidnight) Name() string {
	return "midnight"
}

func (SolarMidnight) Evaluate(o Observer, cd datetime.CalendarDate, loc *time.Location) (time.Time, error) {
	return Midnight(o, cd, loc), nil
}

// SunriseEvent implements Event for sunrise.
type SunriseEvent struct{}

func (SunriseEvent) Name() string {
	return "sunrise"
}

func (SunriseEvent) Evaluate(o Observer, cd datetime.CalendarDate, loc *time.Location) (time.Time, error) {
	return Sunrise(o, cd, loc)
}

// SunsetEvent implements Event for sunset.
type SunsetEvent struct{}

func (SunsetEvent) Name() string {
	return "sunset"
}

func (SunsetEvent) Evaluate(o Observer, cd datetime.CalendarDate, loc *time.Location) (time.Time, error) {
	return Sunset(o, cd, loc)
}

// DawnEvent implements Event for dawn at the given depression.
type DawnEvent struct{ Depression Depression }

func (d DawnEvent) Name() string {
	if d.Depression == Civil {
		return "dawn"
	}
	return d.Depression.String() + "-dawn"
}

func (d DawnEvent) Evaluate(o Observer, cd datetime.CalendarDate, loc *time.Location) (time.Time, error) {
	return Dawn(o, cd, d.Depression, loc)
}

// DuskEvent implements Event for dusk at the given depression.
type DuskEvent struct{ Depression Depression }

func (d DuskEvent) Name() string {
	if d.Depression == Civil {
		return "dusk"
	}
	return d.Depression.String() + "-dusk"
}

func (d DuskEvent) Evaluate(o Observer, cd datetime.CalendarDate, loc *time.Location) (time.Time, error) {
	return Dusk(o, cd, d.Depression, loc)
}

// Events returns the events in the order in which they occur during
// a day: dawn, sunrise, noon, sunset and dusk (all civil), preceded by
// midnight.
func Events() []Event {
	return []Event{
		SolarMidnight{},
		DawnEvent{Civil},
		SunriseEvent{},
		SolarNoon{},
		SunsetEvent{},
		DuskEvent{Civil},
	}
}

// LookupEvent returns the event with the specified name. In addition to
// the names of the events returned by Events, dawn and dusk may be
// prefixed with nautical- or astronomical-.
func LookupEvent(name string) (Event, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range Events() {
		if e.Name() == name {
			return e, nil
		}
	}
	for _, d := range []Depression{Civil, Nautical, Astronomical} {
		dawn, dusk := DawnEvent{d}, DuskEvent{d}
		if name == dawn.Name() || name == d.String()+"-dawn" {
			return dawn, nil
		}
		if name == dusk.Name() || name == d.String()+"-dusk" {
			return dusk, nil
		}
	}
	return nil, fmt.Errorf("unknown solar event: %q", name)
}

// ParseEvents parses a comma separated list of event names.
func ParseEvents(names string) ([]Event, error) {
	var events []Event
	for _, n := range strings.Split(names, ",") {
		if strings.TrimSpace(n) == "" {
			continue
		}
		e, err := LookupEvent(n)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
