package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSerialLength is the longest serial accepted for a Code128 symbol.
const MaxSerialLength = 80

// ErrInvalidSerial is returned when a serial number cannot be encoded or used as a file name.
var ErrInvalidSerial = errors.New("invalid serial number")

// BarcodeRequest is a single barcode generation request built from CLI input.
type BarcodeRequest struct {
	Serial    string
	OutputDir string
}

// Validate checks that the serial is printable ASCII and safe to embed in a file name.
func (r BarcodeRequest) Validate() error {
	if r.Serial == "" {
		return fmt.Errorf("%w: serial is empty", ErrInvalidSerial)
	}
	if n := utf8.RuneCountInString(r.Serial); n > MaxSerialLength {
		return fmt.Errorf("%w: %d characters exceeds maximum of %d", ErrInvalidSerial, n, MaxSerialLength)
	}
	for i, ch := range r.Serial {
		if ch < 0x20 || ch > 0x7e {
			return fmt.Errorf("%w: unsupported character %q at position %d", ErrInvalidSerial, ch, i)
		}
	}
	if strings.ContainsAny(r.Serial, `/\`) || r.Serial == "." || r.Serial == ".." {
		return fmt.Errorf("%w: %q cannot be used as a file name", ErrInvalidSerial, r.Serial)
	}
	return nil
}

// FileStem returns the extension-less output file name, <serial>_barcode.
func (r BarcodeRequest) FileStem() string {
	return r.Serial + "_barcode"
}
