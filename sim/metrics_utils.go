// sim/metrics_utils.go
package sim

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
)

// SeriesSummary describes the values in a history window.
type SeriesSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"` // population standard deviation
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Last   float64 `json:"last"`
}

// SummarizeSeries computes descriptive statistics over values.
// Empty input yields a zero summary and no error.
func SummarizeSeries(values []float64) (SeriesSummary, error) {
	if len(values) == 0 {
		return SeriesSummary{}, nil
	}
	data := stats.LoadRawData(values)

	var summary SeriesSummary
	var err error
	summary.Count = len(values)
	summary.Last = values[len(values)-1]
	if summary.Mean, err = data.Mean(); err != nil {
		return SeriesSummary{}, fmt.Errorf("series mean: %w", err)
	}
	if summary.StdDev, err = data.StandardDeviation(); err != nil {
		return SeriesSummary{}, fmt.Errorf("series std dev: %w", err)
	}
	if summary.Min, err = data.Min(); err != nil {
		return SeriesSummary{}, fmt.Errorf("series min: %w", err)
	}
	if summary.Max, err = data.Max(); err != nil {
		return SeriesSummary{}, fmt.Errorf("series max: %w", err)
	}
	if summary.Median, err = data.Median(); err != nil {
		return SeriesSummary{}, fmt.Errorf("series median: %w", err)
	}
	return summary, nil
}

// SaveResults writes v as indented JSON to fileName.
func SaveResults(v any, fileName string) (err error) {
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating results file %s: %w", fileName, err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	writer := bufio.NewWriter(file)
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing results file %s: %w", fileName, err)
	}

	logrus.Debugf("Successfully wrote to '%s'", fileName)
	return nil
}
