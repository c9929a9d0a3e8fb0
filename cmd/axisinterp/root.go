// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// newRootCommand returns the axisinterp command tree. Each tree owns its
// viper instance.
func newRootCommand() *cobra.Command {
	v := newViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "axisinterp",
		Short: "Resample 2D lookup tables by separable linear interpolation",
		Long: `Resample 2D lookup tables onto new X and Y axes.

A table is a header row of X values under a free label cell, followed by one
row per Y value. Tables are read from and written to CSV/TSV files or Excel
workbooks (.xlsx, .xlsm).

Configuration is read from --config, ./axisinterp.yaml or ~/axisinterp.yaml,
then AXISINTERP_* environment variables, then flags (highest priority).

Commands:
  resample  Resample a table onto target axes
  inspect   Print the shape and axes of a table
  span      Print an evenly spaced axis`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd.Flags(), map[string]string{
				"log-level":  keyLogLevel,
				"log-format": keyLogFormat,
			}); err != nil {
				return err
			}
			if err := readConfigFile(v, cfgFile); err != nil {
				return err
			}

			return setupLogging(v, cmd.ErrOrStderr())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./axisinterp.yaml or ~/axisinterp.yaml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	cmd.AddCommand(newResampleCommand(v))
	cmd.AddCommand(newInspectCommand(v))
	cmd.AddCommand(newSpanCommand())

	return cmd
}
