// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/hexasm/asm"
	"github.com/ezrec/hexasm/hexfile"
	"github.com/ezrec/hexasm/translate"
)

// createFile writes path via a temporary file in the same directory, so
// that path is only created once write succeeds.
func createFile(path string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	err = write(tmp)
	if err != nil {
		return
	}

	err = tmp.Chmod(0o644)
	if err != nil {
		return
	}

	err = tmp.Close()
	if err != nil {
		return
	}

	err = os.Rename(tmp.Name(), path)
	return
}

// assemble assembles the source at input into a raw image at output.
func assemble(input, output string, verbose bool) (err error) {
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	err = createFile(output, func(w io.Writer) error {
		return hexfile.NewWriter(w).WriteCodes(prog.Words())
	})
	return
}

// disassemble lists the raw image at input as assembly source at output.
func disassemble(input, output string) (err error) {
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	codes, err := hexfile.Read(inf)
	if err != nil {
		return
	}

	err = createFile(output, func(w io.Writer) (err error) {
		for _, code := range codes {
			_, err = fmt.Fprintln(w, code.String())
			if err != nil {
				return
			}
		}
		return
	})
	return
}

func main() {
	var verbose bool
	var disasm bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&disasm, "d", false, "Disassemble a raw image instead of assembling")
	flag.Usage = func() {
		translate.Fprintf(flag.CommandLine.Output(), "Usage: %v [-v] [-d] input output\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	input := flag.Arg(0)
	output := flag.Arg(1)

	if disasm {
		err := disassemble(input, output)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		return
	}

	err := assemble(input, output, verbose)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	translate.Fprintf(os.Stdout, "Assembly complete. Output written to %v\n", output)
}
