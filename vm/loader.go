package vm

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Load reads a finite byte stream as a sequence of big-endian 32-bit
// words and returns them as the contents of a fresh program segment. A
// stream whose length is not a multiple of 4 is malformed input and is
// reported with the offending byte count attached, since that is the
// detail an operator actually needs to track down a bad build.
func Load(r io.Reader) ([]Word, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read program")
	}
	if len(raw)%4 != 0 {
		return nil, errors.Errorf("malformed program: length %d is not a multiple of 4", len(raw))
	}

	words := make([]Word, len(raw)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(raw[i*4:])
	}
	return words, nil
}
