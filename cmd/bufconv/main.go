package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bytebuf/buffer"
)

func main() {
	var (
		from        = flag.String("from", "utf8", "Encoding of the input")
		to          = flag.String("to", "hex", "Encoding of the output")
		str         = flag.String("s", "", "Input string")
		inFile      = flag.String("in", "", "Read input from file (- for stdin)")
		swap        = flag.Int("swap", 0, "Swap byte order in 16, 32 or 64 bit units before output")
		find        = flag.String("find", "", "Print the index of this needle instead of converting")
		atob        = flag.Bool("atob", false, "Decode Base64 input to a Latin1 string")
		btoa        = flag.Bool("btoa", false, "Encode Latin1 input as Base64")
		verbose     = flag.Bool("v", false, "Log diagnostics to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			buffer.SetLogger(l)
			defer l.Sync()
		}
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*str); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	input, err := readInput(*str, *inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(1)
	}

	opts := options{from: *from, to: *to, swap: *swap, find: *find, atob: *atob, btoa: *btoa}
	out, err := run(input, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: bufconv -s <text> [-from enc] [-to enc] [-swap 16|32|64]")
	fmt.Fprintln(os.Stderr, "       bufconv -in <file> [-from enc] [-find needle]")
	fmt.Fprintln(os.Stderr, "       bufconv -s <text> -atob | -btoa")
	fmt.Fprintln(os.Stderr, "       bufconv -i  (interactive mode)")
}

// readInput picks the input source: -s, then -in, then piped stdin.
func readInput(str, inFile string) (string, error) {
	switch {
	case str != "":
		return str, nil
	case inFile == "-":
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	case inFile != "":
		data, err := os.ReadFile(inFile)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	case !term.IsTerminal(int(os.Stdin.Fd())):
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	return "", errors.New("no input")
}
