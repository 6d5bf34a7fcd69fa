package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bryan-cox/dailyplan/internal/model"
)

// WriteYAML writes the schedule as a YAML sequence of entries.
func WriteYAML(out io.Writer, s model.Schedule) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(s.Entries()); err != nil {
		return fmt.Errorf("could not encode schedule as YAML: %w", err)
	}
	return enc.Close()
}

// Write renders the schedule in the named format.
func Write(out io.Writer, format string, s model.Schedule) error {
	switch format {
	case model.FormatText:
		return PrintSchedule(out, s)
	case model.FormatYAML:
		return WriteYAML(out, s)
	default:
		return fmt.Errorf("unsupported output format %q, use %q or %q", format, model.FormatText, model.FormatYAML)
	}
}
