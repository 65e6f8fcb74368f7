// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/scrolltile/send.go
// Summary: The send subcommand: one-shot client for the control socket.

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/framegrace/scrolltile/config"
	"github.com/framegrace/scrolltile/protocol"
)

func sendCmd() *cobra.Command {
	var (
		socketPath string
		windowStr  string
		index      int
		output     string
		backwards  bool
		off        bool

		fixed            float64
		proportion       float64
		adjustFixed      float64
		adjustProportion float64
	)

	cmd := &cobra.Command{
		Use:   "send <action>",
		Short: "send one action to a running instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := protocol.Request{Action: protocol.Action(args[0])}

			if windowStr != "" {
				id, err := uuid.Parse(windowStr)
				if err != nil {
					return fmt.Errorf("bad window id: %w", err)
				}
				req.Window = &id
			}
			if cmd.Flags().Changed("index") {
				req.Index = &index
			}
			req.Output = output
			if cmd.Flags().Changed("backwards") {
				fw := !backwards
				req.Forwards = &fw
			}
			if cmd.Flags().Changed("off") {
				on := !off
				req.On = &on
			}
			if size, err := sizeFromFlags(cmd, fixed, proportion, adjustFixed, adjustProportion); err != nil {
				return err
			} else if size != nil {
				req.Size = size
			}

			if err := req.Validate(); err != nil {
				return err
			}

			if socketPath == "" {
				cfgPath, _ := config.DefaultPath()
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				socketPath = cfg.ResolvedSocketPath()
			}
			return send(socketPath, req)
		},
	}

	cmd.Flags().StringVar(&socketPath, "socket", "", "control socket path")
	cmd.Flags().StringVar(&windowStr, "window", "", "target window id (default: active window)")
	cmd.Flags().IntVar(&index, "index", 0, "column or workspace index")
	cmd.Flags().StringVar(&output, "output", "", "target output name")
	cmd.Flags().BoolVar(&backwards, "backwards", false, "cycle presets backwards")
	cmd.Flags().BoolVar(&off, "off", false, "turn the target state off instead of on")
	cmd.Flags().Float64Var(&fixed, "fixed", 0, "size: set fixed pixels")
	cmd.Flags().Float64Var(&proportion, "proportion", 0, "size: set proportion in percent")
	cmd.Flags().Float64Var(&adjustFixed, "adjust-fixed", 0, "size: adjust by pixels")
	cmd.Flags().Float64Var(&adjustProportion, "adjust-proportion", 0, "size: adjust by percentage points")
	return cmd
}

func sizeFromFlags(cmd *cobra.Command, fixed, proportion, adjustFixed, adjustProportion float64) (*protocol.SizeChange, error) {
	var size *protocol.SizeChange
	set := func(kind protocol.SizeChangeKind, value float64) error {
		if size != nil {
			return errors.New("only one size flag may be given")
		}
		size = &protocol.SizeChange{Kind: kind, Value: value}
		return nil
	}
	if cmd.Flags().Changed("fixed") {
		if err := set(protocol.SizeSetFixed, fixed); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("proportion") {
		if err := set(protocol.SizeSetProportion, proportion); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("adjust-fixed") {
		if err := set(protocol.SizeAdjustFixed, adjustFixed); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("adjust-proportion") {
		if err := set(protocol.SizeAdjustProportion, adjustProportion); err != nil {
			return nil, err
		}
	}
	return size, nil
}

func send(socketPath string, req protocol.Request) error {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := protocol.EncodeRequest(conn, req); err != nil {
		return err
	}
	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return err
	}
	var resp protocol.Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return err
	}
	if !resp.OK {
		return errors.New(resp.Error)
	}
	return nil
}
