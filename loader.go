package tradestats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadLedger reads the ledger file at path, the format is chosen by the file
// extension. A .json file is read with DecodeJSONLedger and the default path.
func LoadLedger(path, currency string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		l, err := DecodeJSONLedger(f, DefaultJSONPath, currency)
		if err != nil {
			return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
		}
		return l, nil
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	l, err := DecodeLedger(f, format, currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedger writes the ledger to path, in the format given by the file
// extension. Parent directories are created.
func SaveLedger(path string, l *Ledger) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("could not close ledger file %q: %w", path, cerr)
		}
	}()

	if err := EncodeLedger(f, l, format); err != nil {
		return fmt.Errorf("could not encode ledger file %q: %w", path, err)
	}
	return nil
}
