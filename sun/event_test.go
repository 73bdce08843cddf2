// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sun_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"cloudeng.io/astral/datetime"
	"cloudeng.io/astral/sun"
	"github.com/nathan-osman/go-sunrise"
)

func TestAgainstGoSunrise(t *testing.T) {
	for _, o := range []sun.Observer{
		london,
		newDelhi,
		{Latitude: 37.3229978, Longitude: -122.0321823},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 0, Longitude: 0},
	} {
		for date := cd(2024, 1, 1); date < cd(2025, 1, 1); date = date.AddDays(11) {
			rise, set := sunrise.SunriseSunset(o.Latitude, o.Longitude,
				date.Year(), time.Month(date.Month()), date.Day())
			r, err := sun.Sunrise(o, date, nil)
			if err != nil {
				t.Fatalf("%v: %v: %v", o, date, err)
			}
			s, err := sun.Sunset(o, date, nil)
			if err != nil {
				t.Fatalf("%v: %v: %v", o, date, err)
			}
			within(t, r, rise, 3*time.Minute)
			within(t, s, set, 3*time.Minute)
		}
	}
}

func TestEvents(t *testing.T) {
	date := cd(2015, 12, 1)
	var prev time.Time
	for _, e := range sun.Events() {
		when, err := e.Evaluate(london, date, nil)
		if err != nil {
			t.Fatalf("%v: %v", e.Name(), err)
		}
		if !when.After(prev) {
			t.Errorf("%v: %v is not after %v", e.Name(), when, prev)
		}
		prev = when
		l, err := sun.LookupEvent(e.Name())
		if err != nil {
			t.Fatal(err)
		}
		if got, want := l.Name(), e.Name(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	events, err := sun.ParseEvents("sunrise, nautical-dawn,astronomical-dusk,Noon")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range events {
		names = append(names, e.Name())
	}
	if got, want := fmt.Sprintf("%v", names), "[sunrise nautical-dawn astronomical-dusk noon]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := sun.ParseEvents("sunrise,teatime"); err == nil {
		t.Errorf("expected an error")
	}

	nd := events[1]
	when, err := nd.Evaluate(london, datetime.NewCalendarDate(2015, 12, 12), nil)
	if err != nil {
		t.Fatal(err)
	}
	within(t, when, utc(2015, 12, 12, 6, 33, 0), time.Minute)
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]time.Time, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = sun.Sunrise(london, cd(2015, 12, 1), nil)
		}(i)
	}
	wg.Wait()
	for _, r := range results[1:] {
		if !r.Equal(results[0]) {
			t.Errorf("got %v, want %v", r, results[0])
		}
	}
}

func ExampleSunrise() {
	london := sun.Observer{Latitude: 51.50853, Longitude: -0.12574}
	rise, err := sun.Sunrise(london, datetime.NewCalendarDate(2015, 12, 1), nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(rise.Format("15:04"))
	// Output:
	// 07:43
}

func ExampleGoldenHour() {
	london := sun.Observer{Latitude: 51.50853, Longitude: -0.12574}
	gh, err := sun.GoldenHour(london, datetime.NewCalendarDate(2016, 5, 18), sun.Setting, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(gh.Start.Format("15:04"), gh.End.Format("15:04"))
	// Output:
	// 19:01 20:17
}
