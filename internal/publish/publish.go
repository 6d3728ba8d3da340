// Package publish uploads finished reports to a coverage collection endpoint.
package publish

import (
	"bytes"
	"github.com/Kantuz001/minicover/internal/config"
	"github.com/Kantuz001/minicover/internal/logging"
	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"time"
)

var (
	timeout = 30 * time.Second
	logger  = logging.AppLogger().WithFields(log.Fields{"component": "publish"})
)

// Publisher uploads Clover reports to the configured coverage endpoint.
type Publisher struct {
	url    string
	client *retryablehttp.Client
}

// NewPublisher creates a publisher for the configured endpoint.
func NewPublisher(config config.PublishConfig) *Publisher {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = timeout
	client.Logger = logger

	return &Publisher{url: config.PublishURL(), client: client}
}

// Enabled returns true if an endpoint is configured, false otherwise.
func (p *Publisher) Enabled() bool {
	return p.url != ""
}

// Publish uploads the report stored at the specified path.
func (p *Publisher) Publish(reportPath string) error {
	report, err := os.ReadFile(reportPath)
	if err != nil {
		return errors.Wrapf(err, "unable to read report %s", reportPath)
	}

	response, err := p.client.Post(p.url, "application/xml", bytes.NewReader(report))
	if err != nil {
		return errors.Wrapf(err, "unable to upload report to %s", p.url)
	}
	defer response.Body.Close()

	if response.StatusCode > 299 || response.StatusCode < 200 {
		return errors.Errorf("status code: %d, error: %s", response.StatusCode, response.Status)
	}

	logger.Infof("published clover report to %s", p.url)
	return nil
}
