package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLedger decodes a JSON ledger snapshot and validates its structure.
func ReadLedger(r io.Reader) (Ledger, error) {
	var l Ledger
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Ledger{}, fmt.Errorf("decoding ledger: %w", err)
	}
	if verrs := Validate(l); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return Ledger{}, fmt.Errorf("invalid ledger: %s", strings.Join(msgs, "; "))
	}
	return l, nil
}

// WriteLedger encodes l as indented JSON.
func WriteLedger(w io.Writer, l Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	return nil
}

// LoadFile reads a ledger snapshot from path.
func LoadFile(path string) (Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return Ledger{}, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()
	return ReadLedger(f)
}

// SaveFile writes a ledger snapshot to path.
func SaveFile(path string, l Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger file: %w", err)
	}
	defer f.Close()

	if err := WriteLedger(f, l); err != nil {
		return err
	}
	return f.Close()
}
