// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Jason-buaa/AxisInterp/axis"
	"github.com/Jason-buaa/AxisInterp/resample"
	"github.com/Jason-buaa/AxisInterp/table"
)

// Configuration keys. Nested keys map to AXISINTERP_<KEY> with dots replaced
// by underscores, e.g. AXISINTERP_TARGET_XSPAN.
const (
	keyInput     = "input"
	keyOutput    = "output"
	keySheet     = "sheet"
	keyCell      = "cell"
	keyLabel     = "label"
	keyPrecision = "precision"
	keyOrder     = "order"
	keyJobs      = "jobs"
	keyTargetX   = "target.x"
	keyTargetY   = "target.y"
	keyXSpan     = "target.xspan"
	keyYSpan     = "target.yspan"
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
)

const (
	envPrefix      = "AXISINTERP"
	configBaseName = "axisinterp"
)

var (
	errConflictingTarget = errors.New("both an axis list and a span are set")
	errUnsupportedFormat = errors.New("unsupported table format")
	errMissingInput      = errors.New("no input table given")
	errSheetOutput       = errors.New("several sheets need a workbook output")
)

// config is the resolved configuration of one command run.
type config struct {
	Input     string
	Output    string
	Sheets    []string
	Cell      string
	Label     string
	Precision int
	Order     resample.Order
	Jobs      int
	TargetX   []float64 // nil keeps the source axis
	TargetY   []float64
}

// newViper returns a viper instance with defaults and environment lookup.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keySheet, []string{table.DefaultSheet})
	v.SetDefault(keyCell, table.DefaultCell)
	v.SetDefault(keyLabel, table.DefaultLabel)
	v.SetDefault(keyPrecision, table.DefaultPrecision)
	v.SetDefault(keyOrder, resample.DefaultOrder.String())
	v.SetDefault(keyJobs, resample.DefaultConcurrency)
	v.SetDefault(keyLogLevel, logrus.InfoLevel.String())
	v.SetDefault(keyLogFormat, "text")

	return v
}

// readConfigFile loads path, or axisinterp.yaml from the working directory or
// the home directory when path is empty. A missing default file is not an error.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configBaseName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	logrus.Debugf("config: loaded %s", v.ConfigFileUsed())

	return nil
}

// bindFlags binds the flags of the running command to their config keys.
// Binding happens per run so commands sharing a key do not steal each
// other's flags.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	return nil
}

// setupLogging configures the global logrus logger from log.level and log.format.
func setupLogging(v *viper.Viper, out io.Writer) error {
	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("config: %s: %w", keyLogLevel, err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(out)

	switch strings.ToLower(v.GetString(keyLogFormat)) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("config: %s: unknown format %q", keyLogFormat, v.GetString(keyLogFormat))
	}

	return nil
}

// loadConfig resolves every key into a config.
func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Input:     v.GetString(keyInput),
		Output:    v.GetString(keyOutput),
		Sheets:    v.GetStringSlice(keySheet),
		Cell:      v.GetString(keyCell),
		Label:     v.GetString(keyLabel),
		Precision: v.GetInt(keyPrecision),
		Jobs:      v.GetInt(keyJobs),
	}
	if cfg.Precision < -1 {
		return config{}, fmt.Errorf("config: %s must be >= -1, got %d", keyPrecision, cfg.Precision)
	}
	if cfg.Jobs < 1 {
		return config{}, fmt.Errorf("config: %s must be >= 1, got %d", keyJobs, cfg.Jobs)
	}

	var err error
	if cfg.Order, err = resample.ParseOrder(v.GetString(keyOrder)); err != nil {
		return config{}, fmt.Errorf("config: %s: %w", keyOrder, err)
	}
	if cfg.TargetX, err = targetAxis(v, keyTargetX, keyXSpan); err != nil {
		return config{}, err
	}
	if cfg.TargetY, err = targetAxis(v, keyTargetY, keyYSpan); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// targetAxis reads one target axis from either an explicit list or a
// lo:hi:n span. The list may be a string ("0, 5, 10") or a YAML sequence.
// Neither set yields nil.
func targetAxis(v *viper.Viper, listKey, spanKey string) ([]float64, error) {
	list := listText(v.Get(listKey))
	span := strings.TrimSpace(v.GetString(spanKey))

	switch {
	case list != "" && span != "":
		return nil, fmt.Errorf("config: %s and %s: %w", listKey, spanKey, errConflictingTarget)
	case span != "":
		xs, err := axis.ParseSpan(span)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", spanKey, err)
		}
		return xs, nil
	case list != "":
		xs, err := axis.Parse(list)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", listKey, err)
		}
		return xs, nil
	default:
		return nil, nil
	}
}

// listText flattens a config value into the text form accepted by axis.Parse.
func listText(raw interface{}) string {
	switch val := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []interface{}:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(val)
	}
}

// isWorkbook reports whether path names an Excel workbook.
func isWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}

// adapterFor picks the table host for path by extension.
func adapterFor(path, sheet string, cfg config) (table.Adapter, error) {
	if path == table.Stdio {
		return &table.CSVFile{Path: path, Label: cfg.Label, Precision: cfg.Precision}, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &table.CSVFile{Path: path, Label: cfg.Label, Precision: cfg.Precision}, nil
	case ".tsv":
		return &table.CSVFile{Path: path, Comma: '\t', Label: cfg.Label, Precision: cfg.Precision}, nil
	case ".xlsx", ".xlsm":
		return &table.XLSXFile{Path: path, Sheet: sheet, Cell: cfg.Cell, Label: cfg.Label}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedFormat, path)
	}
}
