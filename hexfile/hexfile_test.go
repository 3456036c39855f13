package hexfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hexasm/isa"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	err := Write(buff, nil)
	assert.NoError(err)
	assert.Equal("v2.0 raw\n", buff.String())

	buff.Reset()
	err = Write(buff, []isa.Code{0x0_0246, 0x1_9ffb})
	assert.NoError(err)
	assert.Equal("v2.0 raw\n00246 19ffb\n", buff.String())

	codes := make([]isa.Code, 17)
	for n := range codes {
		codes[n] = isa.Code(n * 0x1111)
	}
	buff.Reset()
	err = Write(buff, codes)
	assert.NoError(err)
	expected := []string{
		"v2.0 raw",
		"00000 01111 02222 03333 04444 05555 06666 07777",
		"08888 09999 0aaaa 0bbbb 0cccc 0dddd 0eeee 0ffff",
		"11110",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), buff.String())

	err = Write(failWriter{}, codes)
	assert.Error(err)
}

func TestRead(t *testing.T) {
	assert := assert.New(t)

	codes, err := Read(strings.NewReader("v2.0 raw\n00246 19ffb\n3*0 1\n"))
	assert.NoError(err)
	assert.Equal([]isa.Code{0x0_0246, 0x1_9ffb, 0, 0, 0, 1}, codes)

	codes, err = Read(strings.NewReader("v2.0 raw\n"))
	assert.NoError(err)
	assert.Nil(codes)

	_, err = Read(strings.NewReader(""))
	assert.ErrorIs(err, ErrHeader)

	_, err = Read(strings.NewReader("00246\n"))
	assert.ErrorIs(err, ErrHeader)

	_, err = Read(strings.NewReader("v2.0 raw\n0024g\n"))
	assert.Equal(ErrParseNumber("0024g"), err)

	_, err = Read(strings.NewReader("v2.0 raw\nx*1\n"))
	assert.Equal(ErrParseNumber("x*1"), err)
}

func TestReadWrite(t *testing.T) {
	assert := assert.New(t)

	codes := []isa.Code{
		isa.MakeCodeR(isa.OP_ADD, 1, 2, 3),
		isa.MakeCodeJ(isa.OP_JUMP, -5),
		isa.MakeCodeS(isa.OP_POP, 15),
	}

	buff := &bytes.Buffer{}
	assert.NoError(Write(buff, codes))

	read, err := Read(buff)
	assert.NoError(err)
	assert.Equal(codes, read)
}
