package main

import "math"

/*
steamIF97 is the primary steam property backend: the IAPWS-IF97
industrial formulation, regions 1 (compressed/saturated liquid),
2 (superheated/saturated vapour) and 4 (saturation line).

Saturated liquid properties are region-1 evaluations at (T_sat(p), p),
saturated vapour properties region-2 evaluations at the same point.
No region-validity checks are applied; out-of-domain inputs yield
non-finite values that the solver treats as unrecoverable.
*/
type steamIF97 struct{}

// specific gas constant of water, kJ/(kg K)
const if97_r = 0.461526

func (steamIF97) name() string { return "IAPWS-IF97" }

func (steamIF97) t_sat(p float64) float64 {
	return if97_t_sat_region4(p)
}

func (steamIF97) p_sat(t float64) float64 {
	return if97_p_sat_region4(t)
}

func (s steamIF97) hf(p float64) float64 {
	_, h, _ := _if97_region1(if97_t_sat_region4(p), p)
	return h
}

func (s steamIF97) hg(p float64) float64 {
	_, h, _ := _if97_region2(if97_t_sat_region4(p), p)
	return h
}

func (s steamIF97) sf(p float64) float64 {
	_, _, sv := _if97_region1(if97_t_sat_region4(p), p)
	return sv
}

func (s steamIF97) sg(p float64) float64 {
	_, _, sv := _if97_region2(if97_t_sat_region4(p), p)
	return sv
}

func (s steamIF97) vf(p float64) float64 {
	v, _, _ := _if97_region1(if97_t_sat_region4(p), p)
	return v
}

func (s steamIF97) h_super(p, t float64) float64 {
	_, h, _ := _if97_region2(t, p)
	return h
}

func (s steamIF97) s_super(p, t float64) float64 {
	_, _, sv := _if97_region2(t, p)
	return sv
}

// region-4 saturation-line coefficients
var if97_n4 = [11]float64{0, // 1-based
	0.11670521452767e4,
	-0.72421316703206e6,
	-0.17073846940092e2,
	0.12020824702470e5,
	-0.32325550322333e7,
	0.14915108613530e2,
	-0.48232657361591e4,
	0.40511340542057e6,
	-0.23855557567849,
	0.65017534844798e3,
}

/*
Saturation temperature from pressure, region-4 backward equation.

    Args:
        p: pressure, kPa

    Returns:
        saturation temperature, K
*/
func if97_t_sat_region4(p float64) float64 {
	n := &if97_n4
	beta := math.Pow(p/1000.0, 0.25) // p in MPa

	e := beta*beta + n[3]*beta + n[6]
	f := n[1]*beta*beta + n[4]*beta + n[7]
	g := n[2]*beta*beta + n[5]*beta + n[8]
	d := 2.0 * g / (-f - math.Sqrt(f*f-4.0*e*g))

	return (n[10] + d - math.Sqrt((n[10]+d)*(n[10]+d)-4.0*(n[9]+n[10]*d))) / 2.0
}

/*
Saturation pressure from temperature, region-4 basic equation.

    Args:
        t: temperature, K

    Returns:
        saturation pressure, kPa
*/
func if97_p_sat_region4(t float64) float64 {
	n := &if97_n4
	theta := t + n[9]/(t-n[10])

	a := theta*theta + n[1]*theta + n[2]
	b := n[3]*theta*theta + n[4]*theta + n[5]
	c := n[6]*theta*theta + n[7]*theta + n[8]

	base := 2.0 * c / (-b + math.Sqrt(b*b-4.0*a*c))
	return math.Pow(base, 4) * 1000.0 // MPa -> kPa
}

// region-1 dimensionless Gibbs coefficients
var if97_i1 = [34]float64{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 4, 4, 4,
	5, 8, 8, 21, 23, 29, 30, 31, 32,
}

var if97_j1 = [34]float64{
	-2, -1, 0, 1, 2, 3, 4, 5, -9, -7, -1, 0, 1, 3, -3, 0, 1, 3, 17, -4, 0, 6,
	-5, -2, 10, -8, -11, -6, -29, -31, -38, -39, -40, -41,
}

var if97_n1 = [34]float64{
	0.14632971213167, -0.84548187169114, -0.37563603672040e1,
	0.33855169168385e1, -0.95791963387872, 0.15772038513228,
	-0.16616417199501e-1, 0.81214629983568e-3, 0.28319080123804e-3,
	-0.60706301565874e-3, -0.18990068218419e-1, -0.32529748770505e-1,
	-0.21841717175414e-1, -0.52838357969930e-4, -0.47184321073267e-3,
	-0.30001780793026e-3, 0.47661393906987e-4, -0.44141845330846e-5,
	-0.72694996297594e-15, -0.31679644845054e-4, -0.28270797985312e-5,
	-0.85205128120103e-9, -0.22425281908000e-5, -0.65171222895601e-6,
	-0.14341729937924e-12, -0.40516996860117e-6, -0.12734301741641e-8,
	-0.17424871230634e-9, -0.68762131295531e-18, 0.14478307828521e-19,
	0.26335781662795e-22, -0.11947622640071e-22, 0.18228094581404e-23,
	-0.93537087292458e-25,
}

/*
Region-1 properties (liquid water).

    Args:
        t: temperature, K
        p: pressure, kPa

    Returns:
        specific volume m3/kg, enthalpy kJ/kg, entropy kJ/(kg K)
*/
func _if97_region1(t, p float64) (v, h, s float64) {
	pi := (p / 1000.0) / 16.53
	tau := 1386.0 / t

	a := 7.1 - pi
	b := tau - 1.222

	var g, g_pi, g_tau float64
	for k := 0; k < 34; k++ {
		ik, jk, nk := if97_i1[k], if97_j1[k], if97_n1[k]
		ai := math.Pow(a, ik)
		bj := math.Pow(b, jk)

		g += nk * ai * bj
		g_pi -= nk * ik * math.Pow(a, ik-1) * bj
		g_tau += nk * ai * jk * math.Pow(b, jk-1)
	}

	rt := if97_r * t
	v = pi * g_pi * rt / p // p in kPa and rt in kJ/kg gives m3/kg
	h = rt * tau * g_tau
	s = if97_r * (tau*g_tau - g)
	return v, h, s
}

// region-2 ideal-gas part
var if97_j0_2 = [9]float64{0, 1, -5, -4, -3, -2, -1, 2, 3}

var if97_n0_2 = [9]float64{
	-0.96927686500217e1, 0.10086655968018e2, -0.56087911283020e-2,
	0.71452738081455e-1, -0.40710498223928, 0.14240819171444e1,
	-0.43839511319450e1, -0.28408632460772, 0.21268463753307e-1,
}

// region-2 residual part
var if97_i2 = [43]float64{
	1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 4, 4, 4, 5, 6, 6, 6, 7, 7, 7,
	8, 8, 9, 10, 10, 10, 16, 16, 18, 20, 20, 20, 21, 22, 23, 24, 24, 24,
}

var if97_j2 = [43]float64{
	0, 1, 2, 3, 6, 1, 2, 4, 7, 36, 0, 1, 3, 6, 35, 1, 2, 3, 7, 3, 16, 35, 0,
	11, 25, 8, 36, 13, 4, 10, 14, 29, 50, 57, 20, 35, 48, 21, 53, 39, 26, 40, 58,
}

var if97_n2 = [43]float64{
	-0.17731742473213e-2, -0.17834862292358e-1, -0.45996013696365e-1,
	-0.57581259083432e-1, -0.50325278727930e-1, -0.33032641670203e-4,
	-0.18948987516315e-3, -0.39392777243355e-2, -0.43797295650573e-1,
	-0.26674547914087e-4, 0.20481737692309e-7, 0.43870667284435e-6,
	-0.32277677238570e-4, -0.15033924542148e-2, -0.40668253562649e-1,
	-0.78847309559367e-9, 0.12790717852285e-7, 0.48225372718507e-6,
	0.22922076337661e-5, -0.16714766451061e-10, -0.21171472321355e-2,
	-0.23895741934104e2, -0.59059564324270e-17, -0.12621808899101e-5,
	-0.38946842435739e-1, 0.11256211360459e-10, -0.82311340897998e1,
	0.19809712802088e-7, 0.10406965210174e-18, -0.10234747095929e-12,
	-0.10018179379511e-8, -0.80882908646985e-10, 0.10693031879409,
	-0.33662250574171, 0.89185845355421e-24, 0.30629316876232e-12,
	-0.42002467698208e-5, -0.59056029685639e-25, 0.37826947613457e-5,
	-0.12768608934681e-14, 0.73087610595061e-28, 0.55414715350778e-16,
	-0.94369707241210e-6,
}

/*
Region-2 properties (superheated and saturated vapour).

    Args:
        t: temperature, K
        p: pressure, kPa

    Returns:
        specific volume m3/kg, enthalpy kJ/kg, entropy kJ/(kg K)
*/
func _if97_region2(t, p float64) (v, h, s float64) {
	pi := p / 1000.0 // MPa
	tau := 540.0 / t

	// ideal-gas part
	g0 := math.Log(pi)
	g0_pi := 1.0 / pi
	var g0_tau float64
	for k := 0; k < 9; k++ {
		jk, nk := if97_j0_2[k], if97_n0_2[k]
		g0 += nk * math.Pow(tau, jk)
		g0_tau += nk * jk * math.Pow(tau, jk-1)
	}

	// residual part
	b := tau - 0.5
	var gr, gr_pi, gr_tau float64
	for k := 0; k < 43; k++ {
		ik, jk, nk := if97_i2[k], if97_j2[k], if97_n2[k]
		pik := math.Pow(pi, ik)
		bj := math.Pow(b, jk)

		gr += nk * pik * bj
		gr_pi += nk * ik * math.Pow(pi, ik-1) * bj
		gr_tau += nk * pik * jk * math.Pow(b, jk-1)
	}

	rt := if97_r * t
	v = pi * (g0_pi + gr_pi) * rt / p
	h = rt * tau * (g0_tau + gr_tau)
	s = if97_r * (tau*(g0_tau+gr_tau) - (g0 + gr))
	return v, h, s
}
