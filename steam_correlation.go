package main

import "math"

/*
steamCorrelation is the last-resort steam property backend: the
region-4 saturation curve with linearised liquid and vapour
enthalpy/entropy and a constant-slope superheat model.

Deliberately the least accurate of the three backends; it exists only
so the engine stays operable when the higher-fidelity formulations are
ruled out by the capability probe.
*/
type steamCorrelation struct{}

func (steamCorrelation) name() string { return "built-in correlation" }

func (steamCorrelation) t_sat(p float64) float64 {
	// same backward saturation equation the IF97 region 4 uses;
	// the closed-form tier differs in every other property
	return if97_t_sat_region4(p)
}

/*
Saturation pressure by inverting the saturation-temperature curve.

    Args:
        t: temperature, K

    Returns:
        saturation pressure, kPa

    Notes:
        Fixed 60-iteration bisection over [0.5, 25000] kPa.
*/
func (s steamCorrelation) p_sat(t float64) float64 {
	lo, hi := 0.5, 25000.0
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2.0
		if s.t_sat(mid) < t {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2.0
}

func (s steamCorrelation) hf(p float64) float64 {
	tc := s.t_sat(p) - 273.15
	return 4.18*tc + 0.00088*tc*tc
}

func (s steamCorrelation) hg(p float64) float64 {
	tc := s.t_sat(p) - 273.15
	return 2501.3 + 1.86*tc
}

func (s steamCorrelation) sf(p float64) float64 {
	return 4.18 * math.Log(s.t_sat(p)/273.15)
}

func (s steamCorrelation) sg(p float64) float64 {
	ts := s.t_sat(p)
	return s.sf(p) + (s.hg(p)-s.hf(p))/ts
}

func (steamCorrelation) vf(p float64) float64 {
	return 0.001
}

func (s steamCorrelation) h_super(p, t float64) float64 {
	cp_s := 1.87 + 0.00036*(t-373.15)
	return s.hg(p) + cp_s*(t-s.t_sat(p))
}

func (s steamCorrelation) s_super(p, t float64) float64 {
	ts := s.t_sat(p)
	cp_s := 1.87 + 0.00036*(t-373.15)
	return s.sg(p) + cp_s*math.Log(t/ts)
}
