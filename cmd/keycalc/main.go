package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/zephyrtronium/keycalc"
)

func main() {
	log.SetFlags(0)
	var (
		verb        string
		keys, echo  bool
		dump, batch bool
	)
	flag.StringVar(&verb, "fmt", "%s", "result formatting string")
	flag.BoolVar(&keys, "keys", false, "treat arguments as key names instead of token values")
	flag.BoolVar(&echo, "echo", false, "print the expression after every key")
	flag.BoolVar(&dump, "dump", false, "dump the expression tree on exit")
	flag.BoolVar(&batch, "batch", false, "read keys from stdin without raw terminal mode")
	flag.Parse()

	calc := keycalc.New()
	if dump {
		defer calc.Dump(os.Stderr)
	}
	verb += "\n"

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			if keys {
				arg = keycalc.KeyToken(arg)
			}
			calc.Push(arg)
			if echo {
				fmt.Printf("%s : %s\n", calc, calc.Live())
			}
		}
		fmt.Println(calc)
		fmt.Printf(verb, calc.Live())
		return
	}

	fd := int(os.Stdin.Fd())
	if batch || !term.IsTerminal(fd) {
		if err := runPiped(calc, bufio.NewReader(os.Stdin), echo, verb); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runRaw(calc, fd); err != nil {
		log.Fatal(err)
	}
}

// runPiped reads keys from in, one per rune. A newline is the Enter key.
func runPiped(calc *keycalc.Calculator, in io.RuneReader, echo bool, verb string) error {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if !calc.Empty() && !calc.Finished() {
					calc.Push(keycalc.Evaluate)
					report(calc, verb)
				}
				return nil
			}
			return err
		}
		key := runeKey(r)
		if key == "" {
			continue
		}
		calc.Push(keycalc.KeyToken(key))
		switch {
		case calc.Finished():
			report(calc, verb)
		case echo:
			fmt.Printf("%s : %s\n", calc, calc.Live())
		}
	}
}

func report(calc *keycalc.Calculator, verb string) {
	fmt.Println(calc)
	fmt.Printf(verb, calc.Live())
}

// runRaw reads key presses from the terminal and redraws the display after
// each one until q, Ctrl+C, or Ctrl+D.
func runRaw(calc *keycalc.Calculator, fd int) error {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("couldn't set raw mode: %w", err)
	}
	defer term.Restore(fd, old)

	fmt.Print("keycalc (q to quit)\r\n")
	redraw(calc)
	in := bufio.NewReader(os.Stdin)
	for {
		key, err := readKey(in)
		if err != nil {
			fmt.Print("\r\n")
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch key {
		case "":
			continue
		case "Quit":
			fmt.Print("\r\n")
			return nil
		}
		calc.Push(keycalc.KeyToken(key))
		redraw(calc)
	}
}

// readKey reads one key press from raw terminal input and returns its key
// name. Escape sequences sent by keys like arrows give the empty string; a
// lone ESC is the Escape key.
func readKey(in *bufio.Reader) (string, error) {
	r, _, err := in.ReadRune()
	if err != nil {
		return "", err
	}
	switch r {
	case 'q', 3, 4: // q, Ctrl+C, Ctrl+D
		return "Quit", nil
	case '\r':
		return "Enter", nil
	case 0x1b:
		if in.Buffered() == 0 {
			return "Escape", nil
		}
		b, err := in.Peek(1)
		if err != nil {
			return "Escape", nil
		}
		switch b[0] {
		case '[':
			// CSI: parameters up to a final byte in @ through ~.
			in.ReadByte()
			for {
				c, err := in.ReadByte()
				if err != nil {
					return "", err
				}
				if 0x40 <= c && c <= 0x7e {
					return "", nil
				}
			}
		case 'O':
			// SS3: one more byte, e.g. F1 or application-mode arrows.
			in.ReadByte()
			in.ReadByte()
			return "", nil
		}
		return "Escape", nil
	}
	return runeKey(r), nil
}

func redraw(calc *keycalc.Calculator) {
	// Clear the line and write the expression followed by the live value.
	fmt.Printf("\r\x1b[K%s    %s", calc, calc.Live())
}

// runeKey returns the key name for a rune of input, or the empty string for
// runes that aren't keys. Letters stand in for unary operator keys.
func runeKey(r rune) string {
	switch r {
	case 's':
		return "sqrt"
	case 'l':
		return "ln"
	case 'e':
		return "exp"
	case '\n':
		return "Enter"
	case ' ', '\t', '\r':
		return ""
	case 0x1b:
		return "Escape"
	default:
		return string(r)
	}
}
