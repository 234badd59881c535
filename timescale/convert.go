// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timescale

import (
	"math"

	"gonih.org/calendar/internal/errs"
	"gonih.org/calendar/julianday"
)

// LeapSeconds provides TAI-UTC in seconds at a modified Julian day (UTC). It
// is implemented by *eop.LeapSeconds.
type LeapSeconds interface {
	TAIMinusUTC(mjd float64) float64
}

// DUT1 provides UT1-UTC in seconds at a modified Julian day (UTC). It is
// implemented by *eop.DUT1Table.
type DUT1 interface {
	DUT1(mjd float64) float64
}

// LeapSecondsFunc adapts a function to the LeapSeconds interface.
type LeapSecondsFunc func(mjd float64) float64

func (f LeapSecondsFunc) TAIMinusUTC(mjd float64) float64 { return f(mjd) }

// DUT1Func adapts a function to the DUT1 interface.
type DUT1Func func(mjd float64) float64

func (f DUT1Func) DUT1(mjd float64) float64 { return f(mjd) }

// Converter converts between time scales. It is safe for concurrent use, if
// its oracles are.
type Converter struct {
	leaps LeapSeconds
	dut1  DUT1
}

// New returns a Converter using the given oracles. A nil oracle is treated
// as constant 0.
func New(leaps LeapSeconds, dut1 DUT1) *Converter {
	if leaps == nil {
		leaps = LeapSecondsFunc(func(float64) float64 { return 0 })
	}
	if dut1 == nil {
		dut1 = DUT1Func(func(float64) float64 { return 0 })
	}
	return &Converter{leaps: leaps, dut1: dut1}
}

// Convert converts the Julian day jd from the time scale from to the time
// scale to. Conversions from UTC and UT1 are exact up to the accuracy of the
// oracles; conversions to them invert the oracles by iteration, which is
// ambiguous during a leap second.
func (c *Converter) Convert(jd JD, from, to Scale) (JD, error) {
	if from == to {
		if _, err := c.toTAI(jd, from); err != nil {
			return JD{}, err
		}
		return jd, nil
	}
	tai, err := c.toTAI(jd, from)
	if err != nil {
		return JD{}, err
	}
	return c.fromTAI(tai, to)
}

func (c *Converter) toTAI(jd JD, s Scale) (JD, error) {
	switch s {
	case UTC:
		return jd.addSeconds(c.leaps.TAIMinusUTC(jd.MJD())), nil
	case UT1:
		return c.toTAI(c.ut1ToUTC(jd), UTC)
	case TAI:
		return jd, nil
	case TT:
		return jd.addSeconds(-TTMinusTAI), nil
	case GPS:
		return jd.addSeconds(TAIMinusGPS), nil
	case TCG:
		return c.toTAI(tcgToTT(jd), TT)
	}
	return JD{}, errs.Domainf("unknown time scale %v", s)
}

func (c *Converter) fromTAI(tai JD, s Scale) (JD, error) {
	switch s {
	case UTC:
		return c.taiToUTC(tai), nil
	case UT1:
		utc := c.taiToUTC(tai)
		return utc.addSeconds(c.dut1.DUT1(utc.MJD())), nil
	case TAI:
		return tai, nil
	case TT:
		return tai.addSeconds(TTMinusTAI), nil
	case GPS:
		return tai.addSeconds(-TAIMinusGPS), nil
	case TCG:
		return ttToTCG(tai.addSeconds(TTMinusTAI)), nil
	}
	return JD{}, errs.Domainf("unknown time scale %v", s)
}

// ttToTCG and tcgToTT are exact inverses of each other. The rate applies to
// the elapsed time since TCGEpoch in the respective scale.
func ttToTCG(tt JD) JD {
	return JD{Day: tt.Day, Frac: tt.Frac + ((tt.Day-TCGEpoch)+tt.Frac)*(LG/(1-LG))}
}

func tcgToTT(tcg JD) JD {
	return JD{Day: tcg.Day, Frac: tcg.Frac - ((tcg.Day-TCGEpoch)+tcg.Frac)*LG}
}

// taiToUTC inverts UTC = TAI - (TAI-UTC)(UTC), by evaluating the offset at
// the TAI estimate and then at the resulting UTC estimate.
func (c *Converter) taiToUTC(tai JD) JD {
	utc := tai.addSeconds(-c.leaps.TAIMinusUTC(tai.MJD()))
	return tai.addSeconds(-c.leaps.TAIMinusUTC(utc.MJD()))
}

func (c *Converter) ut1ToUTC(ut1 JD) JD {
	utc := ut1.addSeconds(-c.dut1.DUT1(ut1.MJD()))
	return ut1.addSeconds(-c.dut1.DUT1(utc.MJD()))
}

// Century returns the number of Julian centuries (TT) since J2000.0 at the
// Julian day jd in the time scale s.
func (c *Converter) Century(jd JD, s Scale) (float64, error) {
	tt, err := c.Convert(jd, s, TT)
	if err != nil {
		return 0, err
	}
	return julianday.Century(tt.Day, tt.Frac), nil
}

// BesselianYear returns the Besselian epoch at the Julian day jd in the time
// scale s.
func (c *Converter) BesselianYear(jd JD, s Scale) (float64, error) {
	tt, err := c.Convert(jd, s, TT)
	if err != nil {
		return 0, err
	}
	return julianday.BesselianYear(tt.Float()), nil
}

// ERA returns the Earth rotation angle in radians, in [0, 2π), at the Julian
// day ut1 (UT1), following IERS Conventions 2010, equation 5.15.
func ERA(ut1 JD) float64 {
	t := (ut1.Day - julianday.J2000) + ut1.Frac
	f := math.Mod(ut1.Day, 1) + math.Mod(ut1.Frac, 1)
	turns := math.Mod(f+0.7790572732640+0.00273781191135448*t, 1)
	if turns < 0 {
		turns++
	}
	return 2 * math.Pi * turns
}

// ERA returns the Earth rotation angle at the Julian day jd in the time scale
// s. See the function ERA.
func (c *Converter) ERA(jd JD, s Scale) (float64, error) {
	ut1, err := c.Convert(jd, s, UT1)
	if err != nil {
		return 0, err
	}
	return ERA(ut1), nil
}
