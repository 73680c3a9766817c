// file: pkg/applesoft/detokenizer.go

package applesoft

import (
	"errors"
	"fmt"
	"strings"
)

var ErrTruncatedProgram = errors.New("truncated tokenized program")

// Detokenize expands a tokenized program stream back into listing text,
// one line per source line. Token bytes become keyword text via the
// reversed table; everything below 0x80 is literal. Unknown token bytes
// have no keyword and are rendered as a hex escape rather than dropped.
func Detokenize(stream []byte) (string, error) {
	var listing strings.Builder
	i := 0

	for {
		if i+2 > len(stream) {
			return "", ErrTruncatedProgram
		}
		next := int(stream[i]) | int(stream[i+1])<<8
		i += 2
		if next == 0 {
			break
		}

		if i+2 > len(stream) {
			return "", ErrTruncatedProgram
		}
		lineNum := int(stream[i]) | int(stream[i+1])<<8
		i += 2

		fmt.Fprintf(&listing, "%d ", lineNum)
		for {
			if i >= len(stream) {
				return "", ErrTruncatedProgram
			}
			b := stream[i]
			i++
			if b == 0x00 {
				break
			}
			if b >= 0x80 {
				if keyword, ok := KeywordForToken(b); ok {
					listing.WriteString(keyword)
				} else {
					fmt.Fprintf(&listing, "{$%02X}", b)
				}
				continue
			}
			listing.WriteByte(b)
		}
		listing.WriteByte('\n')
	}

	return listing.String(), nil
}
