package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpdg/capguard"
	"github.com/rpdg/capguard/internal/logging"
)

const maxRequestBytes = 1 << 20

type request struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params []any           `json:"params"`
}

type response struct {
	ID     json.RawMessage `json:"id"`
	Result any             `json:"result,omitempty"`
	Error  *responseError  `json:"error,omitempty"`
}

type responseError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve bridge calls as newline-delimited JSON on stdin/stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		b := capguard.DefaultBridge(logging.Component(logger, "bridge"))
		return serve(os.Stdin, cmd.OutOrStdout(), b, logger)
	},
}

// serve answers one response line per request line until r is exhausted.
// Malformed lines get an error response with a null id.
func serve(r io.Reader, w io.Writer, b *capguard.Bridge, log *zap.Logger) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRequestBytes)

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		resp := handle(line, b, log)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return sc.Err()
}

func handle(line []byte, b *capguard.Bridge, log *zap.Logger) response {
	var req request
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return response{ID: json.RawMessage("null"), Error: &responseError{Kind: "parse", Message: err.Error()}}
	}
	if len(req.ID) == 0 {
		req.ID = json.RawMessage("null")
	}

	result, err := b.Call(req.Method, req.Params...)
	if err != nil {
		log.Debug("bridge call failed",
			zap.String(logging.KeyMethod, req.Method),
			zap.ByteString(logging.KeyRequestID, req.ID),
			zap.Error(err))
		return response{ID: req.ID, Error: &responseError{Kind: errorKind(err), Message: err.Error()}}
	}
	return response{ID: req.ID, Result: result}
}

func errorKind(err error) string {
	var argErr *capguard.ArgumentError
	switch {
	case errors.As(err, &argErr):
		return "argument"
	case errors.Is(err, capguard.ErrEnumerationFailed):
		return "enumeration"
	case errors.Is(err, capguard.ErrCaptureFailed):
		return "capture"
	default:
		return "internal"
	}
}
