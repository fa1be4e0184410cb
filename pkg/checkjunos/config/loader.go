package config

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ─────────────────────────────────────────────────────────────────────────────
// Threshold overrides
// ─────────────────────────────────────────────────────────────────────────────

// ThresholdOverride replaces the catalog's default warning/critical pair for
// one metric identifier.
type ThresholdOverride struct {
	Warning  float64 `yaml:"warning"`
	Critical float64 `yaml:"critical"`
}

// Overrides maps metric identifier (check mode string) → threshold override.
type Overrides map[string]ThresholdOverride

// ThresholdsPathFromEnv returns the override file path from the
// CHECK_JUNOS_THRESHOLDS_PATH environment variable, or "" when unset.
func ThresholdsPathFromEnv() string {
	return os.Getenv("CHECK_JUNOS_THRESHOLDS_PATH")
}

// LoadOverrides reads the YAML threshold-override file at path. An empty path
// returns nil overrides (catalog defaults apply). Validation errors from
// individual entries are accumulated and returned together so that operators
// see all problems at once.
//
// File schema:
//
//	cpu_load_re:
//	  warning: 80
//	  critical: 92
//	temperature:
//	  warning: 50
//	  critical: 60
func LoadOverrides(path string, logger *slog.Logger) (Overrides, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(noopWriter{}, nil))
	}
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open thresholds file %q: %w", path, err)
	}
	defer f.Close()

	var raw Overrides
	dec := yaml.NewDecoder(f)
	dec.KnownFields(false) // extra keys are tolerated
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode thresholds file %q: %w", path, err)
	}

	var errs []string
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		o := raw[id]
		if o.Critical < o.Warning {
			errs = append(errs, fmt.Sprintf(
				"%s: critical threshold %v below warning threshold %v", id, o.Critical, o.Warning))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("thresholds file %q: %d error(s):\n  %s",
			path, len(errs), strings.Join(errs, "\n  "))
	}

	logger.Debug("config: loaded threshold overrides", "file", path, "count", len(raw))
	return raw, nil
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }
