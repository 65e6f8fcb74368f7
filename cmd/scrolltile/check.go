// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/scrolltile/check.go
// Summary: The check subcommand: parse a config file and print the resolved
//          options.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrace/scrolltile/config"
	"github.com/framegrace/scrolltile/scroll"
)

func checkCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "validate the config file and print resolved options",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				cfgPath = p
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			o := cfg.Options()

			fmt.Printf("config: %s\n", cfgPath)
			fmt.Printf("gaps: %g\n", o.Gaps)
			fmt.Printf("struts: left=%g right=%g top=%g bottom=%g\n",
				o.Struts.Left, o.Struts.Right, o.Struts.Top, o.Struts.Bottom)
			fmt.Printf("center-focused-column: %s\n", centerPolicyName(o.CenterFocusedColumn))
			fmt.Printf("rtl: %v\n", o.RTL)
			fmt.Printf("preset-column-widths: %d\n", len(o.PresetColumnWidths))
			fmt.Printf("preset-window-heights: %d\n", len(o.PresetWindowHeights))
			fmt.Printf("animations: off=%v slowdown=%g\n", o.Animations.Off, o.Animations.Slowdown)
			fmt.Printf("socket: %s\n", cfg.ResolvedSocketPath())
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	return cmd
}

func centerPolicyName(p scroll.CenterFocusedColumn) string {
	switch p {
	case scroll.CenterAlways:
		return "always"
	case scroll.CenterOnOverflow:
		return "on-overflow"
	default:
		return "never"
	}
}
