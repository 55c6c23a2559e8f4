// bbd is a binary Braille dump filter: it encodes raw bytes from files
// or stdin as Braille Patterns text on stdout, and decodes such text
// back to raw bytes.
//
// The heavy lifting lives in the codec and style packages; this command
// is flag parsing, file iteration and exit-code plumbing. When several
// files are encoded in one run the wrap phase carries across them, so
// the concatenated output wraps as one continuous stream.
//
// Exit codes: 0 on success, 2 when a path names something other than a
// regular file, 1 for every other failure.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/bbd/codec"
	"github.com/katalvlaran/bbd/style"
)

// errNotAFile marks the one failure that gets its own exit code.
var errNotAFile = errors.New("not a regular file")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bbd: %v\n", err)
		if errors.Is(err, errNotAFile) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	var (
		decode    bool
		styleName string
		columns   int
		indent    int
		markdown  bool
	)

	flagSet := pflag.NewFlagSet("bbd", pflag.ContinueOnError)
	flagSet.BoolVarP(&decode, "decode", "d", false, "decode Braille characters to bytes; ignores wrapping")
	flagSet.StringVarP(&styleName, "style", "s", style.NLBB.String(), "style: bcd, direct, nlbb, nlbt, nrbb or nrbt")
	flagSet.IntVarP(&columns, "columns", "c", codec.DefaultWrapWidth, "wrap to N columns (\"bytes\") per line; 0 disables wrapping")
	flagSet.IntVarP(&indent, "indent", "i", 0, "indent continuation lines by N spaces")
	flagSet.BoolVarP(&markdown, "markdown", "m", false, "markdown output (encode only)")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(flagSet)
			return nil
		}
		return err
	}
	if markdown && decode {
		return errors.New("--markdown conflicts with --decode")
	}

	st, err := style.Parse(styleName)
	if err != nil {
		return err
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		if path == "-" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("file path %q does not exist", path)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %q", errNotAFile, path)
		}
	}

	offset := 0
	for _, path := range paths {
		content, err := readInput(path)
		if err != nil {
			return err
		}

		if decode {
			data, err := codec.Decode(string(content), st)
			if err != nil {
				return err
			}
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			continue
		}

		opts := codec.Options{WrapWidth: columns, Indent: indent, Markdown: markdown, Offset: offset}
		text, err := codec.Encode(content, st, &opts)
		if err != nil {
			return err
		}
		if markdown {
			fmt.Printf("`%s`:\n\n%s\n\n", path, text)
		} else {
			fmt.Println(text)
		}
		offset += len(content)
	}
	return nil
}

// readInput slurps one input; "-" means stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Print(`bbd — encode/decode data to/from Braille Patterns Unicode block characters

Usage: bbd [flags] [PATH ...]

PATH defaults to "-" (stdin).

Flags:
`)
	fmt.Print(flagSet.FlagUsages())
	fmt.Print(`
Styles:
  bcd     Binary Coded Decimal of byte values 0-99
  direct  Direct encoding using the standard Braille dot values
  nlbb    Most significant nibble (MSN) left column, most significant
          bit (MSB) bottom row. This is the default style.
  nlbt    MSN left column, MSB top row
  nrbb    MSN right column, MSB bottom row
  nrbt    MSN right column, MSB top row
`)
}
