package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

type Config struct {
	ParamDataPath string
	OutputDataDir string
}

/*
Run one combined-cycle analysis.

    Args:
        param_data_path: parameter JSON file path ("" for defaults)
        output_data_dir: output folder path
*/
func run(param_data_path string, output_data_dir string) {
	startTime := time.Now()

	// output directory
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	if fi, err := os.Stat(output_data_dir); err != nil || !fi.IsDir() {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	// parameter set
	p := DefaultParameters()
	if param_data_path != "" {
		log.Printf("Load parameter file `%s`", param_data_path)
		var err error
		p, err = LoadParameters(param_data_path)
		if err != nil {
			log.Fatal(err)
		}
	}

	// steam property source, probed once for the whole run
	st, err := NewSteamTable()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Steam property source: %s", st.SourceName())

	log.Printf("Run combined cycle analysis")
	res, err := RunAnalysis(p, st)
	if err != nil {
		log.Fatal(err)
	}

	for _, w := range res.Warnings {
		log.Printf("[%s] %s", w.Severity, w.Message)
	}

	log.Printf("W_net,gas = %.2f MW  W_net,steam = %.2f MW  W_combined = %.2f MW  eta_combined = %.1f %%",
		res.Combined.W_net_gas, res.Combined.W_net_steam, res.Combined.W_net, res.Combined.Eta)

	log.Printf("Save results to `%s`", output_data_dir)
	rec := NewRecorder(output_data_dir)
	if err := rec.Save(res, st); err != nil {
		log.Fatal(err)
	}

	elapsedTime := time.Since(startTime).Seconds()
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}

func main() {
	var conf Config

	flag.StringVar(&conf.ParamDataPath, "i", "", "parameter JSON file (defaults when omitted)")
	flag.StringVar(&conf.OutputDataDir, "o", "out", "output directory")
	flag.Parse()

	fmt.Println("AD-HTC fuel-enhanced combined cycle analysis")
	run(conf.ParamDataPath, conf.OutputDataDir)
}
