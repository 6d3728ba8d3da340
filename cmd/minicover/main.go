package main

import (
	"github.com/Kantuz001/minicover/clover"
	"github.com/Kantuz001/minicover/instrumentation"
	"github.com/Kantuz001/minicover/internal/config"
	"github.com/Kantuz001/minicover/internal/gate"
	"github.com/Kantuz001/minicover/internal/hits"
	"github.com/Kantuz001/minicover/internal/logging"
	"github.com/Kantuz001/minicover/internal/metrics"
	"github.com/Kantuz001/minicover/internal/publish"
	"github.com/Kantuz001/minicover/internal/util"
	log "github.com/sirupsen/logrus"
	"os"
)

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "main"})
)

func init() {
	// Output to stdout instead of the default stderr
	log.SetOutput(os.Stdout)
}

func main() {
	// Init configuration
	config, err := config.NewConfiguration()
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("starting %s with config: %s", logging.AppName, config)

	// configure the Logger
	logging.SetLevel(config.Level())

	result, err := instrumentation.Load(config.CoverageFile())
	if err != nil {
		logger.Fatal(err)
	}

	err = clover.GenerateCloverReport(result, config.OutputPath(), config.Threshold())
	if err != nil {
		logger.Fatal(err)
	}

	index, err := hits.Load(result.HitsFile)
	if err != nil {
		logger.Fatal(err)
	}
	verdict := gate.Evaluate(metrics.CountProject(result, index), config.Threshold())

	publisher := publish.NewPublisher(config)
	if publisher.Enabled() {
		f := func() error {
			return publisher.Publish(config.OutputPath())
		}
		err = util.ApplyWithBackoff(f)
		if err != nil {
			logger.Fatalf("error publishing report: %s", err)
		}
	}

	if !verdict.Passed {
		logger.Errorf("coverage %.2f%% is below the required %.2f%%", verdict.Percent, verdict.Required)
		os.Exit(1)
	}
	logger.Infof("coverage %.2f%% meets the required %.2f%%", verdict.Percent, verdict.Required)
}
