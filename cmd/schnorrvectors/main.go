package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"

	"schnorr.mleku.dev/vectors"
)

var (
	cfg *config
	log btclog.Logger
)

// loadVectors reads the configured fixture, or the bundled one when no file
// was given.
func loadVectors() ([]vectors.Vector, error) {
	if cfg.File == "" {
		log.Infof("Using bundled test vectors")
		return vectors.Default()
	}

	log.Infof("Loading test vectors from '%s'", cfg.File)
	return vectors.Load(cfg.File)
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stdout)
	defer os.Stdout.Sync()
	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log = backendLogger.Logger("MAIN")
	log.SetLevel(level)
	vecLog := backendLogger.Logger("SVEC")
	vecLog.SetLevel(level)
	vectors.UseLogger(vecLog)

	vs, err := loadVectors()
	if err != nil {
		log.Errorf("Failed to load test vectors: %v", err)
		return err
	}

	var report vectors.Report
	if cfg.FailFast {
		for _, v := range vs {
			res := vectors.Check(v)
			report.Add(res)
			if !res.Passed() {
				break
			}
		}
	} else {
		report = vectors.Run(vs)
	}

	if !report.OK() {
		err := fmt.Errorf("%d of %d test vectors failed", report.Failed,
			len(report.Results))
		log.Error(err)
		return err
	}

	log.Infof("All %d test vectors passed", report.Passed)
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
