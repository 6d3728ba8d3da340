package instrumentation

import (
	"encoding/json"
	"github.com/pkg/errors"
	"io"
	"os"
)

// Read parses an instrumentation result from the specified reader.
func Read(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read instrumentation result")
	}

	result := &Result{}
	err = json.Unmarshal(data, result)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse instrumentation result")
	}
	return result, nil
}

// Load reads the instrumentation result stored at the specified path, as
// written by the instrumentation step.
func Load(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open instrumentation result %s", path)
	}
	defer file.Close()

	return Read(file)
}
