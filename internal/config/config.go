package config

// Configuration declares the configuration properties of this app.
type Configuration interface {
	ReportConfig
	PublishConfig
	LogConfig

	// String returns a string representation of the configuration.
	String() string
}

// ReportConfig defines the report generation configuration.
type ReportConfig interface {
	// CoverageFile returns the path of the instrumentation result to report on.
	CoverageFile() string

	// OutputPath returns the path the Clover report is written to.
	OutputPath() string

	// Threshold returns the required coverage percentage.
	Threshold() float64
}

// PublishConfig defines the report publishing configuration.
type PublishConfig interface {
	// PublishURL returns the URL finished reports are uploaded to.
	// An empty URL disables publishing.
	PublishURL() string
}

// LogConfig defines the logging configuration.
type LogConfig interface {
	// Level returns the logging level.
	Level() string
}
