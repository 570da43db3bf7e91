// Package codec converts boards and piece queues to and from their
// canonical encodings: one bool per board cell in board order, and one
// byte per piece.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/hexblocks/internal/hex"
)

// FormatBoard writes the board occupancy as a string of '0' and '1'.
func FormatBoard(b *hex.Board) string {
	var sb strings.Builder
	sb.Grow(b.Len())
	for _, occupied := range b.Booleans() {
		if occupied {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseBoard reads a board written by FormatBoard. Whitespace is ignored,
// and 'X'/'x' are accepted for filled and '.' for empty cells.
func ParseBoard(s string) (*hex.Board, error) {
	data := make([]bool, 0, len(s))
	for i, r := range s {
		switch r {
		case '1', 'X', 'x':
			data = append(data, true)
		case '0', '.':
			data = append(data, false)
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("%w: board character %q at offset %d", hex.ErrEncoding, r, i)
		}
	}
	return hex.BoardFromBooleans(data)
}

// EncodeQueue returns the one-byte encoding of every piece.
// Pieces outside the 7-cell neighborhood cannot be encoded.
func EncodeQueue(queue []*hex.Shape) ([]byte, error) {
	out := make([]byte, len(queue))
	for i, s := range queue {
		if s == nil || !s.Encodable() {
			return nil, fmt.Errorf("%w: queue slot %d is not encodable", hex.ErrEncoding, i)
		}
		out[i] = s.Mask()
	}
	return out, nil
}

// DecodeQueue decodes one piece per byte. Unlike hex.ShapeFromMask it
// rejects bytes with the top bit set. Pieces get color i for slot i.
func DecodeQueue(data []byte) ([]*hex.Shape, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty queue", hex.ErrEncoding)
	}
	out := make([]*hex.Shape, len(data))
	for i, b := range data {
		if b&0x80 != 0 {
			return nil, fmt.Errorf("%w: queue slot %d byte %#02x uses the top bit", hex.ErrEncoding, i, b)
		}
		s, err := hex.ShapeFromMask(b, i)
		if err != nil {
			return nil, fmt.Errorf("queue slot %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// FormatQueue writes piece masks as a comma separated decimal list.
func FormatQueue(queue []*hex.Shape) (string, error) {
	data, err := EncodeQueue(queue)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ","), nil
}

// ParseQueue reads a comma separated list of masks. Each entry may be
// decimal, 0x hex or 0b binary.
func ParseQueue(s string) ([]*hex.Shape, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	data := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: queue entry %q: %v", hex.ErrEncoding, f, err)
		}
		data = append(data, byte(v))
	}
	return DecodeQueue(data)
}
