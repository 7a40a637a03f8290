package main

import (
	"fmt"
	"math"
)

/*
SteamSource is the capability set every steam/water property backend
exposes. Units are fixed across backends: pressure kPa, temperature K,
enthalpy kJ/kg, entropy kJ/(kg K), specific volume m3/kg.

Backends are resolved once at construction time and the selection is
read-only afterwards; callers never see which backend is active except
through its name.
*/
type SteamSource interface {
	name() string

	// saturation line
	t_sat(p float64) float64
	p_sat(t float64) float64
	hf(p float64) float64
	hg(p float64) float64
	sf(p float64) float64
	sg(p float64) float64
	vf(p float64) float64

	// superheated region
	h_super(p, t float64) float64
	s_super(p, t float64) float64
}

/*
Resolve the steam property source by probing the candidate backends in
fixed priority order: IAPWS-IF97 formulation first, the
corresponding-states model second, the closed-form correlation last.

    Returns:
        the first backend passing the capability probe

    Notes:
        The probe exercises the full operation set at reference
        conditions and checks for finite, physically ordered values.
        Probing happens exactly once; all property calls within a run
        use the same source.
*/
func resolve_steam_source() (SteamSource, error) {
	candidates := []SteamSource{
		&steamIF97{},
		&steamLeeKesler{},
		&steamCorrelation{},
	}

	for _, src := range candidates {
		if _probe_steam_source(src) {
			return src, nil
		}
	}

	return nil, fmt.Errorf("no steam property source passed the capability probe")
}

// Capability probe at atmospheric and boiler-typical conditions.
// A backend qualifies when every operation returns a finite value and
// the saturation properties are physically ordered.
func _probe_steam_source(src SteamSource) bool {
	const p_atm = 101.325 // kPa
	const p_blr = 4000.0  // kPa

	ts := src.t_sat(p_atm)
	if !_finite(ts) || ts < 273.15 || ts > 647.096 {
		return false
	}

	ps := src.p_sat(ts)
	if !_finite(ps) || ps <= 0 {
		return false
	}

	hf, hg := src.hf(p_atm), src.hg(p_atm)
	sf, sg := src.sf(p_atm), src.sg(p_atm)
	if !_finite(hf) || !_finite(hg) || hg <= hf {
		return false
	}
	if !_finite(sf) || !_finite(sg) || sg <= sf {
		return false
	}

	vf := src.vf(p_atm)
	if !_finite(vf) || vf <= 0 {
		return false
	}

	h_sh := src.h_super(p_blr, 673.0)
	s_sh := src.s_super(p_blr, 673.0)
	if !_finite(h_sh) || !_finite(s_sh) || h_sh <= src.hg(p_blr) {
		return false
	}

	return true
}

func _finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
