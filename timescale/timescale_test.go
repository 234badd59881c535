// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timescale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gonih.org/calendar"
	"gonih.org/calendar/eop"
	"gonih.org/calendar/julianday"
)

const secondDays = 1.0 / secondsPerDay

func TestScale(t *testing.T) {
	for _, s := range []Scale{UTC, UT1, TAI, TT, TCG, GPS} {
		got, err := ParseScale(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	got, err := ParseScale("tt")
	require.NoError(t, err)
	require.Equal(t, TT, got)
	_, err = ParseScale("TDB")
	require.ErrorIs(t, err, ErrParse)
	require.Equal(t, "Scale(9)", Scale(9).String())
	require.Equal(t, "Scale(-1)", Scale(-1).String())
}

func TestFromDate(t *testing.T) {
	jd := FromDate(calendar.MustOf(2000, 1, 1), 12, 0, 0)
	require.Equal(t, julianday.J2000, jd.Float())
	require.Equal(t, 51544.5, jd.MJD())

	jd = FromDate(calendar.MustOf(1582, 10, 4), 0, 0, 0)
	require.Equal(t, 2299159.5, jd.Day)

	d, frac, err := JD{2457754.5, 0.75}.Date(calendar.Default())
	require.NoError(t, err)
	require.Equal(t, calendar.MustOf(2017, 1, 1), d)
	require.InDelta(t, 0.75, frac, 1e-12)

	d, frac, err = JD{2457754.5, -0.25}.Date(calendar.Default())
	require.NoError(t, err)
	require.Equal(t, calendar.MustOf(2016, 12, 31), d)
	require.InDelta(t, 0.75, frac, 1e-12)

	d, frac, err = JD{2457754, 0}.Date(calendar.PureJulian())
	require.NoError(t, err)
	y, m, day := d.Date()
	require.Equal(t, []int{2016, 12, 18}, []int{y, int(m), day})
	require.InDelta(t, 0.5, frac, 1e-12)

	_, _, err = JD{-1, 0}.Date(calendar.Default())
	require.ErrorIs(t, err, calendar.ErrOutOfRange)
	_, _, err = JD{math.NaN(), 0}.Date(calendar.Default())
	require.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func TestConvert(t *testing.T) {
	c := New(eop.IERS(nil), DUT1Func(func(float64) float64 { return 0.3 }))
	utc := FromDate(calendar.MustOf(2017, 1, 1), 0, 0, 0)

	tcs := []struct {
		to   Scale
		secs float64
	}{
		{UTC, 0},
		{TAI, 37},
		{TT, 69.184},
		{GPS, 18},
		{UT1, 0.3},
		// LG/(1-LG) of the TT seconds since 1977-01-01T00:00:32.184 TT
		{TCG, 69.184 + 0.8797363077303513},
	}
	for _, tc := range tcs {
		got, err := c.Convert(utc, UTC, tc.to)
		require.NoError(t, err)
		require.Equal(t, utc.Day, got.Day, "UTC -> %v", tc.to)
		require.InDelta(t, tc.secs*secondDays, got.Frac, 1e-15, "UTC -> %v", tc.to)

		back, err := c.Convert(got, tc.to, UTC)
		require.NoError(t, err)
		require.InDelta(t, utc.Float(), back.Float(), 1e-9, "%v -> UTC", tc.to)

		for _, via := range []Scale{UTC, UT1, TAI, TT, TCG, GPS} {
			mid, err := c.Convert(got, tc.to, via)
			require.NoError(t, err)
			back, err := c.Convert(mid, via, UTC)
			require.NoError(t, err)
			require.InDelta(t, 0, (back.Day-utc.Day)+(back.Frac-utc.Frac), 1e-14, "%v -> %v -> UTC", tc.to, via)
		}
	}

	// Before the leap second of 2016-12-31
	got, err := c.Convert(FromDate(calendar.MustOf(2016, 12, 31), 12, 0, 0), UTC, TAI)
	require.NoError(t, err)
	require.InDelta(t, 0.5+36*secondDays, got.Frac, 1e-15)

	_, err = c.Convert(utc, UTC, Scale(17))
	require.ErrorIs(t, err, ErrDomain)
	_, err = c.Convert(utc, Scale(17), UTC)
	require.ErrorIs(t, err, ErrDomain)
	_, err = c.Convert(utc, Scale(17), Scale(17))
	require.ErrorIs(t, err, ErrDomain)
}

func TestConvertNil(t *testing.T) {
	c := New(nil, nil)
	jd := JD{2451545, 0.25}
	got, err := c.Convert(jd, UTC, UT1)
	require.NoError(t, err)
	require.Equal(t, jd, got)
	got, err = c.Convert(jd, UTC, TT)
	require.NoError(t, err)
	require.InDelta(t, 0.25+TTMinusTAI*secondDays, got.Frac, 1e-15)
}

func TestCentury(t *testing.T) {
	c := New(eop.IERS(nil), nil)
	tc, err := c.Century(JD{julianday.J2000, 0}, TT)
	require.NoError(t, err)
	require.Zero(t, tc)
	tc, err = c.Century(JD{julianday.J2000 + julianday.DaysPerCentury, 0}, TT)
	require.NoError(t, err)
	require.Equal(t, 1.0, tc)

	// 2000-01-01 12:00 UTC is 64.184s after J2000.0 TT
	tc, err = c.Century(JD{julianday.J2000, 0}, UTC)
	require.NoError(t, err)
	require.InDelta(t, 64.184*secondDays/julianday.DaysPerCentury, tc, 1e-18)

	by, err := c.BesselianYear(JD{julianday.B1900, 0}, TT)
	require.NoError(t, err)
	require.InDelta(t, 1900, by, 1e-12)

	_, err = c.Century(JD{}, Scale(6))
	require.ErrorIs(t, err, ErrDomain)
}

func TestTCG(t *testing.T) {
	c := New(nil, nil)
	// Check values of the SOFA routines iauTttcg and iauTcgtt.
	tt := JD{2453750.5, 0.892482639}
	tcg, err := c.Convert(tt, TT, TCG)
	require.NoError(t, err)
	require.Equal(t, tt.Day, tcg.Day)
	require.InDelta(t, 0.8924900312508587113, tcg.Frac, 1e-12)

	back, err := c.Convert(JD{2453750.5, 0.8924900312508587113}, TCG, TT)
	require.NoError(t, err)
	require.InDelta(t, 0.892482639, back.Frac, 1e-12)

	// TT and TCG agree at the epoch.
	got, err := c.Convert(JD{TCGEpoch, 0}, TT, TCG)
	require.NoError(t, err)
	require.InDelta(t, 0, got.Frac, 1e-15)

	for _, jd := range []JD{{TCGEpoch, 0}, {2451545, 0}, {2400000.5, 0.25}, {5373484.5, 0.75}} {
		back := tcgToTT(ttToTCG(jd))
		require.InDelta(t, 0, (back.Day-jd.Day)+(back.Frac-jd.Frac), 1e-15, "tcgToTT(ttToTCG(%v))", jd)
	}
}

func TestERA(t *testing.T) {
	const deg = math.Pi / 180
	require.InDelta(t, 280.46061837504, ERA(JD{julianday.J2000, 0})/deg, 1e-9)
	require.InDelta(t, 0.4022837240028158102, ERA(JD{2400000.5, 54388.0}), 1e-12)
	require.InDelta(t, 0.4022837240028158102, ERA(JD{2454388.5, 0}), 1e-9)

	// one sidereal day later
	siderealDay := 1 / 1.00273781191135448
	a := ERA(JD{julianday.J2000, 0})
	b := ERA(JD{julianday.J2000, siderealDay})
	require.InDelta(t, a, b, 1e-9)

	for _, jd := range []JD{{0, 0}, {-0.5, 0}, {2451545, -0.7}, {5373484.5, 0.999}} {
		era := ERA(jd)
		require.True(t, era >= 0 && era < 2*math.Pi, "ERA(%v) = %v", jd, era)
	}

	c := New(eop.IERS(nil), DUT1Func(func(float64) float64 { return 0 }))
	utc := FromDate(calendar.MustOf(2025, time.January, 11), 0, 0, 0)
	got, err := c.ERA(utc, UTC)
	require.NoError(t, err)
	require.InDelta(t, ERA(utc), got, 1e-15)
	got, err = c.ERA(utc, TAI)
	require.NoError(t, err)
	require.InDelta(t, ERA(utc.addSeconds(-37)), got, 1e-12)
}
