// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"
	"time"

	"cloudeng.io/astral/datetime"
)

func TestParseCalendarDates(t *testing.T) {
	ncd := datetime.NewCalendarDate
	for _, tc := range []struct {
		input string
		cd    datetime.CalendarDate
	}{
		{"2024-01-01", ncd(2024, 1, 1)},
		{"01/01/2024", ncd(2024, 1, 1)},
		{"02/29/2024", ncd(2024, 2, 29)},
		{"02/28/2023", ncd(2023, 2, 28)},
		{"Jan-01-2024", ncd(2024, 1, 1)},
		{"Feb-29-2024", ncd(2024, 2, 29)},
		{"december-25-2015", ncd(2015, 12, 25)},
	} {
		var cd datetime.CalendarDate
		if err := cd.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if cd != tc.cd {
			t.Errorf("%v: got %v, want %v", tc.input, cd, tc.cd)
		}
		str := cd.String()
		if err := cd.Parse(str); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if cd != tc.cd {
			t.Errorf("%v: got %v, want %v", tc.input, cd, tc.cd)
		}
	}

	for _, tc := range []string{
		"02/29/2023",
		"Feb-29-2023",
		"2023-13-01",
		"02-03",
		"Jan/03",
		"",
		"01/01/0",
		"01/01/-44",
		"01/01/70000",
	} {
		var cd datetime.CalendarDate
		if err := cd.Parse(tc); err == nil {
			t.Errorf("%v: expected error", tc)
		}
	}
}

func TestCalendarDateArithmetic(t *testing.T) {
	ncd := datetime.NewCalendarDate
	for _, tc := range []struct {
		cd       datetime.CalendarDate
		n        int
		expected datetime.CalendarDate
	}{
		{ncd(2015, 12, 31), 1, ncd(2016, 1, 1)},
		{ncd(2016, 1, 1), -1, ncd(2015, 12, 31)},
		{ncd(2016, 2, 28), 1, ncd(2016, 2, 29)},
		{ncd(2015, 2, 28), 1, ncd(2015, 3, 1)},
		{ncd(2016, 3, 1), -1, ncd(2016, 2, 29)},
		{ncd(2015, 12, 1), 24, ncd(2015, 12, 25)},
	} {
		if got, want := tc.cd.AddDays(tc.n), tc.expected; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.cd, tc.n, got, want)
		}
		if got, want := tc.cd.DaysUntil(tc.expected), tc.n; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}
	if got, want := ncd(2015, 12, 31).Tomorrow(), ncd(2016, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ncd(2016, 3, 1).Yesterday(), ncd(2016, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ncd(2015, 12, 1) < ncd(2015, 12, 2), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ncd(2015, 12, 31) < ncd(2016, 1, 1), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarDateWeekday(t *testing.T) {
	ncd := datetime.NewCalendarDate
	for _, tc := range []struct {
		cd      datetime.CalendarDate
		weekday time.Weekday
	}{
		{ncd(2015, 12, 1), time.Tuesday},
		{ncd(2015, 12, 2), time.Wednesday},
		{ncd(2016, 2, 29), time.Monday},
		{ncd(2000, 1, 1), time.Saturday},
	} {
		if got, want := tc.cd.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2015, 12, 1, 23, 30, 0, 0, time.UTC)
	if got, want := datetime.Today(now, nil), datetime.NewCalendarDate(2015, 12, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := datetime.Today(now, kolkata), datetime.NewCalendarDate(2015, 12, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValidAndDates(t *testing.T) {
	ncd := datetime.NewCalendarDate
	if ncd(2023, 2, 29).Valid() {
		t.Errorf("2023-02-29 should not be valid")
	}
	if !ncd(2024, 2, 29).Valid() {
		t.Errorf("2024-02-29 should be valid")
	}
	if ncd(0, 1, 1).Valid() {
		t.Errorf("year 0 should not be valid")
	}
	for _, y := range []int{datetime.MinYear, datetime.MaxYear} {
		cd := ncd(y, 12, 31)
		if !cd.Valid() {
			t.Errorf("%v should be valid", cd)
		}
		if got, want := cd.Year(), y; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	dates := datetime.Dates(ncd(2015, 12, 30), ncd(2016, 1, 2))
	if got, want := dates.String(), "2015-12-30, 2015-12-31, 2016-01-01, 2016-01-02"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimeOfDay(t *testing.T) {
	for _, tc := range []struct {
		val  string
		when datetime.TimeOfDay
	}{
		{"08:12", datetime.NewTimeOfDay(8, 12, 0)},
		{"20:01:13", datetime.NewTimeOfDay(20, 1, 13)},
		{"00:00", datetime.NewTimeOfDay(0, 0, 0)},
	} {
		var tod datetime.TimeOfDay
		if err := tod.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
		}
		if got, want := tod, tc.when; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	for _, tc := range []string{"", "08:61", "24:00", "08-12", "1:2:3:4"} {
		var tod datetime.TimeOfDay
		if err := tod.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %v", tc)
		}
	}
	tod := datetime.NewTimeOfDay(7, 43, 10)
	if got, want := tod.Duration(), 7*time.Hour+43*time.Minute+10*time.Second; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	when := datetime.NewCalendarDate(2015, 12, 1).Time(tod, nil)
	if got, want := datetime.TimeOfDayFromTime(when), tod; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
