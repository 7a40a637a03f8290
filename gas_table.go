package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// specific gas constant of dry air, kJ/(kg K)
const gas_r = 0.287

// subdivision count for the property integrals
const gas_n_quad = 200

// sample count for the averaged diagnostics
const gas_n_avg = 50

// entropy reference state
const (
	gas_t_ref = 298.15  // K
	gas_p_ref = 101.325 // kPa
)

/*
Specific heat of dry air at constant pressure.

    Args:
        t: temperature, K

    Returns:
        specific heat, kJ/(kg K)

    Notes:
        4th-order polynomial in T/1000 fitted over roughly 250-1700 K.
        No domain check is applied; extrapolation outside the fitted
        range degrades silently.
*/
func gas_cp(t float64) float64 {
	tt := t / 1000.0
	return 1.0483 -
		0.3717*tt +
		0.9483*tt*tt -
		0.6271*tt*tt*tt +
		0.1507*tt*tt*tt*tt
}

/*
Enthalpy of dry air relative to the 1 K datum.

    Args:
        t: temperature, K

    Returns:
        enthalpy, kJ/kg

    Notes:
        Trapezoidal integration of cp from 1 K, so every caller shares
        the same datum.
*/
func gas_h(t float64) float64 {
	t = math.Max(t, 1.0)

	temps := floats.Span(make([]float64, gas_n_quad+1), 1.0, t)
	cp_vals := make([]float64, len(temps))
	for i, ti := range temps {
		cp_vals[i] = gas_cp(ti)
	}

	return integrate.Trapezoidal(temps, cp_vals)
}

/*
Entropy of dry air relative to (298.15 K, 101.325 kPa).

    Args:
        t: temperature, K
        p: pressure, kPa

    Returns:
        entropy, kJ/(kg K)

    Notes:
        s(T,P) = int(cp/T)dT from T_ref to T - R*ln(P/P_ref)
*/
func gas_s(t, p float64) float64 {
	return _gas_s_thermal(t) - gas_r*math.Log(p/gas_p_ref)
}

// int(cp/T)dT from the reference temperature to t.
// The quadrature grid must be ascending, so the integral is flipped
// when t lies below the reference temperature.
func _gas_s_thermal(t float64) float64 {
	lo, hi := gas_t_ref, t
	sign := 1.0
	if t < gas_t_ref {
		lo, hi = t, gas_t_ref
		sign = -1.0
	}

	temps := floats.Span(make([]float64, gas_n_quad+1), lo, hi)
	integrand := make([]float64, len(temps))
	for i, ti := range temps {
		integrand[i] = gas_cp(ti) / ti
	}

	return sign * integrate.Trapezoidal(temps, integrand)
}

/*
Temperature after an isentropic change from (t1, p1) to pressure p2.

    Args:
        t1: inlet temperature, K
        p1: inlet pressure, kPa
        p2: outlet pressure, kPa

    Returns:
        outlet temperature, K

    Notes:
        Bisection over [0.4*t1, 3.5*t1] with a fixed 80 iterations,
        which converges below a millikelvin without a tolerance loop.
        Assumes entropy increases monotonically with temperature at
        fixed pressure.
*/
func gas_t_isentropic(t1, p1, p2 float64) float64 {
	s_target := gas_s(t1, p1)

	lo, hi := t1*0.4, t1*3.5
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2.0
		if gas_s(mid, p2) < s_target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2.0
}

/*
Ratio of specific heats of dry air.

    Args:
        t: temperature, K

    Returns:
        gamma, dimensionless
*/
func gas_gamma(t float64) float64 {
	c := gas_cp(t)
	return c / (c - gas_r)
}

/*
Mean specific heat over [t1, t2] sampled on a fixed grid.

    Args:
        t1: one end of the temperature interval, K
        t2: other end of the temperature interval, K

    Returns:
        mean specific heat, kJ/(kg K)

    Notes:
        Diagnostic value; the cycle solve integrates cp directly.
*/
func gas_cp_avg(t1, t2 float64) float64 {
	return _gas_grid_mean(t1, t2, gas_cp)
}

/*
Mean ratio of specific heats over [t1, t2] sampled on a fixed grid.

    Args:
        t1: one end of the temperature interval, K
        t2: other end of the temperature interval, K

    Returns:
        mean gamma, dimensionless
*/
func gas_gamma_avg(t1, t2 float64) float64 {
	return _gas_grid_mean(t1, t2, gas_gamma)
}

func _gas_grid_mean(t1, t2 float64, f func(float64) float64) float64 {
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	temps := floats.Span(make([]float64, gas_n_avg), t1, t2)
	vals := make([]float64, len(temps))
	for i, ti := range temps {
		vals[i] = f(ti)
	}

	return stat.Mean(vals, nil)
}
