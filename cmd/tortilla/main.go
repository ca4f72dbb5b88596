// Command tortilla rewraps text read from standard input and writes the
// result to standard output. Argument parsing, stdin/stdout plumbing and
// help-text formatting are deliberately thin: the wrapping logic itself
// lives in package tortilla.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/satoqz/tortilla"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const usage = `tortilla rewraps text from standard input to standard output.

Usage:
  tortilla [flags]

Flags:
  --width N       target column width to wrap at (default 80)
  --tabs N        display columns per tab (default 4)
  --crlf          terminate output lines with CRLF instead of LF
  --salsa         use the optimal-fit (minimum-raggedness) line breaker
  --guacamole     use the first-fit line breaker (default)
  -h, --help      show this help text
`

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tortilla", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	width := fs.Int("width", tortilla.DefaultWidth, "target column width to wrap at")
	tabs := fs.Int("tabs", tortilla.DefaultTabWidth, "display columns per tab")
	crlf := fs.Bool("crlf", false, "terminate output lines with CRLF instead of LF")
	salsa := fs.Bool("salsa", false, "use the optimal-fit line breaker")
	guacamole := fs.Bool("guacamole", false, "use the first-fit line breaker (default)")
	help := fs.BoolP("help", "h", false, "show this help text")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "tortilla: %s\n", err)
		return 1
	}

	if *help {
		fmt.Fprint(stdout, usage)
		return 0
	}

	if *salsa && *guacamole {
		fmt.Fprintln(stderr, "tortilla: --salsa and --guacamole are mutually exclusive")
		return 1
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "tortilla: %s\n", err)
		return 1
	}

	toppings := tortilla.NewToppings().Width(*width).Tabs(*tabs)
	if *crlf {
		toppings = toppings.Newline(tortilla.CRLF)
	}

	var sauce tortilla.Sauce = &tortilla.Guacamole{}
	if *salsa {
		sauce = &tortilla.Salsa{}
	}

	out := bufio.NewWriter(stdout)
	if _, err := tortilla.WriteTo(out, string(input), toppings, sauce); err != nil {
		fmt.Fprintf(stderr, "tortilla: %s\n", err)
		return 1
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "tortilla: %s\n", err)
		return 1
	}
	return 0
}
