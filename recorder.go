package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// dome sample count written for chart overlays
const recorder_dome_points = 60

/*
Recorder writes the results of one solve to an output directory for
the presentation layer: state-point tables and the saturation dome as
CSV, everything else as a JSON summary. It holds no computed state of
its own.
*/
type Recorder struct {
	out_dir string
}

func NewRecorder(out_dir string) *Recorder {
	return &Recorder{out_dir: out_dir}
}

/*
Write the complete result set.

    Args:
        res: solved analysis result
        st: steam property table (saturation dome sampling)

    Returns:
        the first write error, if any

    Notes:
        Files: gas_states.csv, steam_states.csv, saturation_dome.csv,
        summary.json.
*/
func (r *Recorder) Save(res *AnalysisResult, st *SteamTable) error {
	if err := r._save_csv("gas_states.csv", &res.Gas.States); err != nil {
		return err
	}
	if err := r._save_csv("steam_states.csv", &res.Steam.States); err != nil {
		return err
	}

	dome := st.saturation_dome(recorder_dome_points)
	if err := r._save_csv("saturation_dome.csv", &dome); err != nil {
		return err
	}

	return r._save_summary("summary.json", res)
}

func (r *Recorder) _save_csv(name string, rows interface{}) error {
	path := filepath.Join(r.out_dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create `%s`: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("write `%s`: %w", path, err)
	}
	return nil
}

func (r *Recorder) _save_summary(name string, res *AnalysisResult) error {
	path := filepath.Join(r.out_dir, name)

	raw, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("write `%s`: %w", path, err)
	}
	return nil
}
