package clover

import (
	"encoding/xml"
	"github.com/Kantuz001/minicover/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"path/filepath"
)

const header = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "clover"})
)

// writeReport serializes the report document and writes it to outputPath,
// creating missing parent directories first.
func writeReport(report *Coverage, outputPath string) error {
	document, err := xml.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to serialize clover report")
	}

	dir := filepath.Dir(outputPath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return errors.Wrapf(err, "unable to create report directory %s", dir)
	}

	content := append([]byte(header), document...)
	content = append(content, '\n')
	err = os.WriteFile(outputPath, content, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to write clover report %s", outputPath)
	}

	logger.Infof("generated clover report %s", outputPath)
	return nil
}
