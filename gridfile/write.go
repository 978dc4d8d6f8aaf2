package gridfile

import (
	"fmt"
	"io"
	"os"
)

// NoPath is written instead of a number when no order reaches every bath.
const NoPath = "no path"

// FormatResult writes cost as a decimal integer and a newline.
func FormatResult(w io.Writer, cost int) error {
	_, err := fmt.Fprintf(w, "%d\n", cost)
	return err
}

// WriteResult creates (or truncates) path and writes cost to it.
func WriteResult(path string, cost int) error {
	return writeFile(path, func(w io.Writer) error {
		return FormatResult(w, cost)
	})
}

// WriteNoPath creates (or truncates) path and records the no-path outcome.
func WriteNoPath(path string) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, NoPath)
		return err
	})
}

func writeFile(path string, body func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridfile: create %s: %w", path, err)
	}
	if err := body(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("gridfile: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("gridfile: close %s: %w", path, err)
	}

	return nil
}
