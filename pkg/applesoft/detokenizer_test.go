// file: pkg/applesoft/detokenizer_test.go

package applesoft

import (
	"errors"
	"testing"
)

func TestDetokenize(t *testing.T) {
	t.Run("round-trips an uppercase listing", func(t *testing.T) {
		source := "10 PRINT \"HELLO\"\n20 GOTO 10\n30 END\n"
		got, err := Detokenize(Tokenize(source))
		if err != nil {
			t.Fatalf("detokenize failed: %v", err)
		}
		if got != source {
			t.Errorf("listing = %q, want %q", got, source)
		}
	})

	t.Run("keywords expand from token bytes", func(t *testing.T) {
		stream := []byte{
			0x09, 0x08, // next pointer
			0x0A, 0x00, // line 10
			Tokens["HOME"],
			0x00,       // line terminator
			0x00, 0x00, // end of program
		}
		got, err := Detokenize(stream)
		if err != nil {
			t.Fatalf("detokenize failed: %v", err)
		}
		if got != "10 HOME\n" {
			t.Errorf("listing = %q, want %q", got, "10 HOME\n")
		}
	})

	t.Run("unknown token rendered as hex escape", func(t *testing.T) {
		stream := []byte{
			0x08, 0x08,
			0x0A, 0x00,
			0xFE, // not in the table
			0x00,
			0x00, 0x00,
		}
		got, err := Detokenize(stream)
		if err != nil {
			t.Fatalf("detokenize failed: %v", err)
		}
		if got != "10 {$FE}\n" {
			t.Errorf("listing = %q, want %q", got, "10 {$FE}\n")
		}
	})

	t.Run("truncated stream errors", func(t *testing.T) {
		cases := [][]byte{
			{},                       // no sentinel at all
			{0x09},                   // half a next pointer
			{0x09, 0x08},             // missing line number
			{0x09, 0x08, 0x0A, 0x00}, // missing terminator and sentinel
		}
		for _, stream := range cases {
			if _, err := Detokenize(stream); !errors.Is(err, ErrTruncatedProgram) {
				t.Errorf("stream %#v: want ErrTruncatedProgram, got %v", stream, err)
			}
		}
	})
}
