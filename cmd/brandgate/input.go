package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
)

const stdinArg = "-"

// readDiagnostics reads diagnostics from the file named by args[0], or from
// stdin when no argument or "-" is given. The input is either a JSON array
// of diagnostics or an object with a "diagnostics" array.
func readDiagnostics(cmd *cobra.Command, args []string) ([]diagnostic.Diagnostic, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == stdinArg {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("reading diagnostics: %w", err)
	}

	return decodeDiagnostics(data)
}

func decodeDiagnostics(data []byte) ([]diagnostic.Diagnostic, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("no diagnostics on input")
	}

	if trimmed[0] == '{' {
		var wrapped struct {
			Diagnostics []diagnostic.Diagnostic `json:"diagnostics"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("decoding diagnostics: %w", err)
		}
		return wrapped.Diagnostics, nil
	}

	var ds []diagnostic.Diagnostic
	if err := json.Unmarshal(trimmed, &ds); err != nil {
		return nil, fmt.Errorf("decoding diagnostics: %w", err)
	}
	return ds, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
