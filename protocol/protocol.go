// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: protocol/protocol.go
// Summary: Line framing for the control socket.
// Notes: One JSON object per line in each direction. Requests are small and
//        user-initiated, so readability wins over a binary framing.

package protocol

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Version is the protocol version carried in every response.
const Version = 1

// Lines longer than this are rejected rather than buffered.
const maxLineBytes = 64 * 1024

var ErrLineTooLong = errors.New("protocol: line exceeds 64KB limit")

// Decoder reads newline-delimited requests.
type Decoder struct {
	r *bufio.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReaderSize(r, maxLineBytes)}
}

// Decode reads one request. io.EOF signals a clean end of stream.
func (d *Decoder) Decode() (Request, error) {
	line, err := d.r.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(line) == 0 {
			return Request{}, io.EOF
		}
		if err == bufio.ErrBufferFull {
			return Request{}, ErrLineTooLong
		}
		if err != io.EOF {
			return Request{}, err
		}
	}

	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Request{}, fmt.Errorf("protocol: decode request: %w", err)
	}
	return req, nil
}

// Encoder writes newline-delimited responses.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) Encode(resp Response) error {
	resp.Version = Version
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("protocol: encode response: %w", err)
	}
	data = append(data, '\n')
	_, err = e.w.Write(data)
	return err
}

// EncodeRequest writes one request line; the client-side counterpart of
// Decoder.
func EncodeRequest(w io.Writer, req Request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("protocol: encode request: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
