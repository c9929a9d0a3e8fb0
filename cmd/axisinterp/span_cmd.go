// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jason-buaa/AxisInterp/axis"
)

func newSpanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "span lo:hi:n",
		Short: "Print an evenly spaced axis",
		Long: `Print n evenly spaced values from lo to hi, comma separated, in the
form accepted by --x and --y.

Example:
  axisinterp span 0:1:5   # 0,0.25,0.5,0.75,1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := axis.ParseSpan(args[0])
			if err != nil {
				return err
			}
			parts := make([]string, len(xs))
			for i, x := range xs {
				parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, ","))

			return nil
		},
	}
}
