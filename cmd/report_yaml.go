package cmd

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlReport is the top-level structure serialized to the optional output
// file: run metadata, per-command results, and the overall tally.
type yamlReport struct {
	Target    string          `yaml:"target"`
	User      string          `yaml:"user"`
	Generated string          `yaml:"generated"`
	Results   []yamlCmdResult `yaml:"results"`
	Summary   yamlSummary     `yaml:"summary"`
}

// yamlCmdResult records the outcome of a single command execution.
type yamlCmdResult struct {
	Position   int    `yaml:"position"`
	Command    string `yaml:"command"`
	ExitStatus int    `yaml:"exit_status"`
	Stdout     string `yaml:"stdout,omitempty"`
	Stderr     string `yaml:"stderr,omitempty"`
}

// yamlSummary carries the final tally, including whether the run was cut
// short by a connection failure.
type yamlSummary struct {
	Attempted    int    `yaml:"attempted"`
	Succeeded    int    `yaml:"succeeded"`
	AllSucceeded bool   `yaml:"all_succeeded"`
	Fatal        string `yaml:"fatal,omitempty"`
}

// newYAMLReport builds a report from batch results.
func newYAMLReport(params connectionParameters, results []executionResult, allSucceeded bool, fatal string) *yamlReport {
	r := &yamlReport{
		Target:    params.address(),
		User:      params.User,
		Generated: time.Now().Format(time.RFC3339),
		Summary: yamlSummary{
			Attempted:    len(results),
			Succeeded:    countSucceeded(results),
			AllSucceeded: allSucceeded,
			Fatal:        fatal,
		},
	}
	for _, res := range results {
		r.Results = append(r.Results, yamlCmdResult{
			Position:   res.Position,
			Command:    res.Command,
			ExitStatus: res.ExitStatus,
			Stdout:     string(res.Stdout),
			Stderr:     string(res.Stderr),
		})
	}
	return r
}

// writeYAMLReport serializes the report to YAML with indentation and writes
// to the provided writer in a buffered manner.
func writeYAMLReport(w io.Writer, r *yamlReport) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return err
	}
	_ = enc.Close()
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(buf.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}
