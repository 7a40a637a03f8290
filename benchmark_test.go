package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Benchmark design point used across the suite: 40 kg/s machine at
// pressure ratio 12 and 1450 K turbine inlet, with a 4 MPa / 673 K
// bottoming cycle condensing at 10 kPa.
func benchmark_parameters() Parameters {
	p := DefaultParameters()

	p.T1 = 300.0
	p.P1 = 101.325
	p.Rp = 12.0
	p.TIT = 1450.0
	p.Eta_c = 0.85
	p.Eta_t = 0.88
	p.Eta_cc = 1.0
	p.M_air = 40.0
	p.LHV = 50000.0

	p.P_boiler = 4000.0
	p.T_steam = 673.0
	p.P_cond = 10.0
	p.Eta_st = 0.85
	p.Eta_fp = 0.90

	p.T_stack = 420.0
	p.Eta_hrsg = 0.85
	p.Pinch_dT = 15.0

	p.M_biomass = 6.0
	p.Moisture_split = 0.5
	p.Ad_yield = 0.45

	return p
}

func new_test_steam_table(t *testing.T) *SteamTable {
	t.Helper()

	st, err := NewSteamTable()
	require.NoError(t, err)
	return st
}

func assert_between(t *testing.T, label string, value, lo, hi float64) {
	t.Helper()

	if value < lo || value > hi {
		t.Errorf("%s = %.4f, expected within [%g, %g]", label, value, lo, hi)
	}
}
