// Package hexfile reads and writes Logisim "v2.0 raw" memory images.
package hexfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/hexasm/internal"
	"github.com/ezrec/hexasm/isa"
	"github.com/ezrec/hexasm/translate"
)

var f = translate.From

const (
	HEADER         = "v2.0 raw"
	WORDS_PER_LINE = 8
	WORD_DIGITS    = 5
)

var (
	ErrHeader = errors.New(f("missing 'v2.0 raw' header"))
)

// ErrParseNumber is returned for an image entry that is not a hex word.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a hex word", string(err))
}

// Writer writes instruction words as a raw image.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteCodes writes the header, then the words as lower case, zero padded
// hex, space separated, WORDS_PER_LINE to a line. The output is flushed
// before returning.
func (hw *Writer) WriteCodes(codes iter.Seq[isa.Code]) (err error) {
	_, err = hw.w.WriteString(HEADER + "\n")
	if err != nil {
		return
	}

	for chunk := range internal.IterSeqChunk(codes, WORDS_PER_LINE) {
		words := make([]string, len(chunk))
		for n, code := range chunk {
			words[n] = fmt.Sprintf("%0*x", WORD_DIGITS, uint32(code))
		}
		_, err = hw.w.WriteString(strings.Join(words, " ") + "\n")
		if err != nil {
			return
		}
	}

	err = hw.w.Flush()
	return
}

// Write writes codes to w as a raw image.
func Write(w io.Writer, codes []isa.Code) error {
	return NewWriter(w).WriteCodes(slices.Values(codes))
}

// Read parses a raw image. Logisim run length entries of the form
// "count*word" are expanded.
func Read(r io.Reader) (codes []isa.Code, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		err = scanner.Err()
		if err == nil {
			err = ErrHeader
		}
		return
	}
	if strings.TrimSpace(scanner.Text()) != HEADER {
		err = ErrHeader
		return
	}

	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			count := 1
			value := word
			if before, after, ok := strings.Cut(word, "*"); ok {
				count, err = strconv.Atoi(before)
				if err != nil || count < 0 {
					err = ErrParseNumber(word)
					return
				}
				value = after
			}

			var code uint64
			code, err = strconv.ParseUint(value, 16, 32)
			if err != nil {
				err = ErrParseNumber(word)
				return
			}

			codes = slices.AppendSeq(codes, internal.IterSeqRepeat(isa.Code(code), count))
		}
	}

	err = scanner.Err()
	return
}
