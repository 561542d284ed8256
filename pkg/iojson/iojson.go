// Package iojson writes JSON output for command line consumers.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Write pretty-prints obj as indented JSON to stdout.
func Write(obj any) error {
	return WriteWith(os.Stdout, obj)
}

// WriteWith pretty-prints obj as indented JSON to w.
func WriteWith(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj as a single compact JSON line to w. Intended for
// list output where each record is one line (easy to pipe through jq).
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
