package main

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAnalysisBenchmarkCase(t *testing.T) {
	p := benchmark_parameters()
	st := new_test_steam_table(t)

	res, err := RunAnalysis(p, st)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, st.SourceName(), res.Source)
	require.NotNil(t, res.Gas)
	require.NotNil(t, res.Steam)
	require.NotNil(t, res.Hrsg)
	require.NotNil(t, res.Ad)
	require.NotNil(t, res.Exergy)

	c := res.Combined
	assert.InDelta(t, res.Gas.W_net*p.M_air/1000.0, c.W_net_gas, 1e-9)
	assert.InDelta(t, res.Steam.W_net*res.Hrsg.M_steam/1000.0, c.W_net_steam, 1e-9)
	// the combined net power is the exact sum, no loss term
	assert.Equal(t, c.W_net_gas+c.W_net_steam, c.W_net)
	assert.InDelta(t, c.W_net/c.Q_in*100.0, c.Eta, 1e-9)

	assert.InDelta(t, c.W_gt-c.W_comp, c.W_net_gas, 1e-9)
	assert.InDelta(t, c.W_st-c.W_pump, c.W_net_steam, 1e-9)

	assert_between(t, "net steam power", c.W_net_steam, 4.0, 6.0)
	assert_between(t, "combined net power", c.W_net, 14.0, 21.0)
	assert_between(t, "combined efficiency", c.Eta, 40.0, 58.0)
	assert.Greater(t, c.Eta, res.Gas.Eta, "heat recovery must lift the plant above the gas cycle alone")

	assert.Empty(t, res.Warnings)
}

func TestRunAnalysisRejectsInvalidInputs(t *testing.T) {
	st := new_test_steam_table(t)

	bad := benchmark_parameters()
	bad.TIT = math.NaN()

	res, err := RunAnalysis(bad, st)
	assert.Error(t, err)
	assert.Nil(t, res)

	negative := benchmark_parameters()
	negative.Eta_c = -0.5

	res, err = RunAnalysis(negative, st)
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestRunAnalysisAbortsOnNonFiniteState(t *testing.T) {
	st := new_test_steam_table(t)

	// passes the input screen but overflows the gas property integrals
	p := benchmark_parameters()
	p.TIT = 1e300
	require.NoError(t, p.check())

	res, err := RunAnalysis(p, st)
	require.Error(t, err)
	assert.Nil(t, res, "no partial result on an unrecoverable state")
	assert.Contains(t, err.Error(), "non-finite")
}

func TestRunAnalysisCollectsAdvisoryWarnings(t *testing.T) {
	st := new_test_steam_table(t)

	p := benchmark_parameters()
	p.TIT = 1550.0
	p.Ad_yield = 0.01

	res, err := RunAnalysis(p, st)
	require.NoError(t, err)

	// a flagged design still solves in full
	require.NotNil(t, res.Gas)
	require.NotEmpty(t, res.Warnings)

	var has_tit, has_deficit bool
	for _, w := range res.Warnings {
		switch {
		case w.Severity == SeverityWarning && strings.Contains(w.Message, "inlet temperature"):
			has_tit = true
		case w.Severity == SeverityWarning && strings.Contains(w.Message, "Biogas"):
			has_deficit = true
		}
	}
	assert.True(t, has_tit, "input rule warning expected")
	assert.True(t, has_deficit, "result rule warning expected")
}

func TestRunAnalysisDefaultsStayClean(t *testing.T) {
	st := new_test_steam_table(t)

	res, err := RunAnalysis(DefaultParameters(), st)
	require.NoError(t, err)

	// the initial design point must produce power without danger flags
	for _, w := range res.Warnings {
		assert.NotEqual(t, SeverityDanger, w.Severity, w.Message)
	}
	assert.Greater(t, res.Combined.W_net, 0.0)
}
