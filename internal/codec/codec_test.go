package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/hexblocks/internal/hex"
)

func TestBoardText(t *testing.T) {
	b := hex.NewBoard(2)
	b.SetState(hex.At(0, 0), true)
	b.SetState(hex.At(2, 2), true)

	s := FormatBoard(b)
	if s != "1000001" {
		t.Fatalf("FormatBoard() = %q", s)
	}

	parsed, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}
	if FormatBoard(parsed) != s {
		t.Errorf("round trip = %q", FormatBoard(parsed))
	}

	loose, err := ParseBoard(" X..\n.. .x ")
	if err != nil {
		t.Fatalf("ParseBoard(loose) failed: %v", err)
	}
	if FormatBoard(loose) != s {
		t.Errorf("loose parse = %q, expected %q", FormatBoard(loose), s)
	}
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad length", "10101"},
		{"bad character", "100a001"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseBoard(tc.input); !errors.Is(err, hex.ErrEncoding) {
				t.Errorf("ParseBoard(%q) error = %v, expected ErrEncoding", tc.input, err)
			}
		})
	}
}

func TestQueueBytes(t *testing.T) {
	queue, err := DecodeQueue([]byte{8, 28, 127})
	if err != nil {
		t.Fatalf("DecodeQueue() failed: %v", err)
	}
	if len(queue) != 3 || queue[1].Count() != 3 || queue[2].Count() != 7 {
		t.Errorf("DecodeQueue() = %v", queue)
	}
	for i, s := range queue {
		if s.Color() != i {
			t.Errorf("slot %d color = %d", i, s.Color())
		}
	}

	data, err := EncodeQueue(queue)
	if err != nil {
		t.Fatalf("EncodeQueue() failed: %v", err)
	}
	if string(data) != string([]byte{8, 28, 127}) {
		t.Errorf("EncodeQueue() = %v", data)
	}
}

func TestDecodeQueueStrict(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"zero mask", []byte{8, 0}},
		{"top bit", []byte{0x88}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeQueue(tc.data); !errors.Is(err, hex.ErrEncoding) {
				t.Errorf("DecodeQueue(%v) error = %v, expected ErrEncoding", tc.data, err)
			}
		})
	}
}

func TestEncodeQueueRejectsWidePieces(t *testing.T) {
	wide := hex.ShapeOf(0, hex.At(0, 0), hex.At(0, 2))
	if _, err := EncodeQueue([]*hex.Shape{wide}); !errors.Is(err, hex.ErrEncoding) {
		t.Errorf("EncodeQueue(wide) error = %v", err)
	}
}

func TestQueueText(t *testing.T) {
	queue, err := ParseQueue("8, 0x1c;0b1111111")
	if err != nil {
		t.Fatalf("ParseQueue() failed: %v", err)
	}
	s, err := FormatQueue(queue)
	if err != nil {
		t.Fatalf("FormatQueue() failed: %v", err)
	}
	if s != "8,28,127" {
		t.Errorf("FormatQueue() = %q", s)
	}

	for _, bad := range []string{"", "8,abc", "256", "128"} {
		if _, err := ParseQueue(bad); !errors.Is(err, hex.ErrEncoding) {
			t.Errorf("ParseQueue(%q) error = %v", bad, err)
		}
	}
	if _, err := ParseQueue(strings.Repeat("8,", 4)); err != nil {
		t.Errorf("trailing comma should be accepted: %v", err)
	}
}
