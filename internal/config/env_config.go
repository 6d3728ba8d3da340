package config

import (
	"errors"
	"fmt"
	"github.com/Kantuz001/minicover/internal/logging"
	"github.com/Kantuz001/minicover/internal/util"
	"os"
	"runtime"
	"strconv"
	"strings"
)

var (
	settings = map[string]Setting{}
)

func init() {
	// Report generation
	settings["CoverageFile"] = Setting{"MINICOVER_COVERAGE_FILE", "./coverage.json", []func(interface{}, string) error{util.IsNotEmpty}}
	settings["OutputPath"] = Setting{"MINICOVER_CLOVER_OUTPUT", "./clover.xml", []func(interface{}, string) error{util.IsNotEmpty}}
	settings["Threshold"] = Setting{"MINICOVER_THRESHOLD", "90", []func(interface{}, string) error{util.IsFloat}}

	// Report publishing
	settings["PublishURL"] = Setting{"MINICOVER_PUBLISH_URL", "", []func(interface{}, string) error{}}

	// Logging
	settings["Level"] = Setting{"LOG_LEVEL", "info", []func(interface{}, string) error{util.IsNotEmpty}}
}

// Setting is an element in the app configuration. It contains the environment
// variable from which the setting is retrieved, its default value as well as a list
// of validations which the value of this setting needs to pass.
type Setting struct {
	key          string
	defaultValue string
	validations  []func(interface{}, string) error
}

// EnvConfig is a Configuration implementation which reads the configuration from the process environment.
type EnvConfig struct {
}

// NewConfiguration creates a configuration instance.
func NewConfiguration() (Configuration, error) {
	// Check if we have all we need.
	multiError := verifyEnv()
	if !multiError.Empty() {
		for _, err := range multiError.Errors {
			logging.AppLogger().Error(err)
		}
		return nil, errors.New("one or more required environment variables for this configuration are missing or invalid")
	}

	config := EnvConfig{}
	return &config, nil
}

// CoverageFile returns the path of the instrumentation result to report on.
func (c *EnvConfig) CoverageFile() string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return value
}

// OutputPath returns the path the Clover report is written to.
func (c *EnvConfig) OutputPath() string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return value
}

// Threshold returns the required coverage percentage.
func (c *EnvConfig) Threshold() float64 {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	threshold, err := strconv.ParseFloat(value, 64)
	if err != nil {
		threshold, _ = strconv.ParseFloat(settings["Threshold"].defaultValue, 64)
	}
	return threshold
}

// PublishURL returns the URL finished reports are uploaded to.
func (c *EnvConfig) PublishURL() string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return value
}

// Level returns the logging level.
func (c *EnvConfig) Level() string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return value
}

// String returns a string representation of the configuration.
func (c *EnvConfig) String() string {
	config := map[string]interface{}{}
	for key, setting := range settings {
		value := getConfigValueFromEnv(key)
		// don't echo credentials
		if strings.Contains(setting.key, "PASSWORD") && len(value) > 0 {
			value = "***"
		}
		config[key] = value

	}
	return fmt.Sprintf("%v", config)
}

// Verify checks whether all needed config options are set.
func verifyEnv() util.MultiError {
	var errors util.MultiError
	for key, setting := range settings {
		value := getConfigValueFromEnv(key)

		for _, validateFunc := range setting.validations {
			errors.Collect(validateFunc(value, setting.key))
		}
	}

	return errors
}

func getConfigValueFromEnv(funcName string) string {
	setting := settings[funcName]

	value, ok := os.LookupEnv(setting.key)
	if !ok {
		value = setting.defaultValue
	}
	return value
}
