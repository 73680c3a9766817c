// file: pkg/applesoft/tokenizer.go

package applesoft

import (
	"strconv"
	"strings"
	"unicode"
)

// ProgramOrigin is the conventional load address of an Applesoft program.
// The next-line pointers in the token stream are absolute memory
// addresses computed from this base.
const ProgramOrigin = 0x0801

// Tokenize converts line-numbered BASIC source into the interpreter's
// in-memory program representation: per line a 2-byte next-line address,
// 2-byte line number, the tokenized body and a zero terminator, with a
// final 2-byte zero sentinel closing the stream.
//
// Lines without a parseable leading line number are skipped silently;
// the interpreter would reject them anyway and a permissive tokenizer is
// more useful than a failing one.
func Tokenize(source string) []byte {
	var output []byte
	address := ProgramOrigin

	for _, line := range strings.Split(strings.TrimSpace(source), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		numEnd := strings.IndexFunc(line, unicode.IsSpace)
		numText := line
		body := ""
		if numEnd >= 0 {
			numText = line[:numEnd]
			body = strings.TrimLeftFunc(line[numEnd:], unicode.IsSpace)
		}

		lineNum, err := strconv.Atoi(numText)
		if err != nil {
			continue
		}

		tokens := tokenizeLine(body)

		// next pointer (2) + line number (2) + tokens + terminator (1)
		nextAddress := address + 4 + len(tokens) + 1
		output = append(output, byte(nextAddress), byte(nextAddress>>8))
		output = append(output, byte(lineNum), byte(lineNum>>8))
		output = append(output, tokens...)
		output = append(output, 0x00)

		address = nextAddress
	}

	// End-of-program marker.
	return append(output, 0x00, 0x00)
}

// tokenizeLine tokenizes a single line body (without the line number).
// Two modes gate the keyword matcher: inside a string literal characters
// pass through untouched, and once a REM is seen the rest of the line is
// literal ASCII. Everything else gets the longest matching keyword
// compressed to its token byte, with bare characters uppercased when
// alphabetic.
func tokenizeLine(line string) []byte {
	var output []byte
	inString := false
	inRem := false

	for i := 0; i < len(line); {
		c := line[i]

		if c == '"' {
			inString = !inString
			output = append(output, c)
			i++
			continue
		}

		if inString || inRem {
			output = append(output, c)
			i++
			continue
		}

		if i+3 <= len(line) && strings.EqualFold(line[i:i+3], "REM") {
			output = append(output, tokenREM)
			i += 3
			inRem = true
			continue
		}

		if token, length, ok := matchKeyword(line[i:]); ok {
			output = append(output, token)
			i += length
			continue
		}

		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		output = append(output, c)
		i++
	}

	return output
}

// matchKeyword tries to match the longest keyword at the start of rest.
func matchKeyword(rest string) (token byte, length int, ok bool) {
	for _, keyword := range keywords {
		if len(keyword) <= len(rest) && strings.EqualFold(rest[:len(keyword)], keyword) {
			return Tokens[keyword], len(keyword), true
		}
	}
	return 0, 0, false
}
