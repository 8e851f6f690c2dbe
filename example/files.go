package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/next-trace/scg-ioerror/ioerror"
)

const magicNumber uint16 = 0xDEAD

// readToString reads r to the end and requires the content to be valid UTF-8.
func readToString(r io.Reader) (string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	if err := validateUTF8(buf); err != nil {
		return "", ioerror.InvalidData(err)
	}

	return string(buf), nil
}

// validateUTF8 reports the first invalid sequence in b, if any.
func validateUTF8(b []byte) error {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("invalid utf-8 sequence of %d bytes from index %d", size, i)
		}

		i += size
	}

	return nil
}

// checkMagicNumber reads two bytes and compares them with magicNumber in little-endian order.
func checkMagicNumber(r io.Reader) error {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ioerror.Wrap(err, ioerror.KindUnexpectedEOF, "failed to fill whole buffer")
		}

		return err
	}

	if binary.LittleEndian.Uint16(buf[:]) != magicNumber {
		return ioerror.InvalidData("unrecognised format")
	}

	return nil
}
