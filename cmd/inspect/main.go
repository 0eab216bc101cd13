package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/valwire"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to encoded file (default: stdin)")
		hexInput    = flag.Bool("hex", false, "Treat input as hex text instead of raw bytes")
		all         = flag.Bool("all", false, "Decode consecutive values until the buffer is exhausted")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		valwire.SetLogger(logger)
	}

	data, err := readInput(*inFile, *hexInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(inputName(*inFile), data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(inputName(*inFile), data, *all); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inputName(inFile string) string {
	if inFile == "" {
		return "<stdin>"
	}
	return inFile
}

func readInput(inFile string, hexInput bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if inFile == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(inFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if hexInput {
		compact := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\n', '\r':
				return -1
			}
			return r
		}, string(data))
		data, err = hex.DecodeString(compact)
		if err != nil {
			return nil, fmt.Errorf("decode hex input: %w", err)
		}
	}

	return data, nil
}

func run(name string, data []byte, all bool) error {
	// Styled output only when stdout is a terminal
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	width := 80
	if styled {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	fmt.Printf("Input: %s (%d bytes)\n", name, len(data))

	offset := 0
	for i := 0; ; i++ {
		v, n, err := valwire.DecodeNext(data[offset:])
		if err != nil {
			return fmt.Errorf("decode value %d at offset %d: %w", i, offset, err)
		}

		fmt.Printf("\nValue %d: %d bytes at offset %d\n", i, n, offset)
		printTree(os.Stdout, v, styled, width)

		offset += n
		if !all || offset >= len(data) {
			break
		}
	}

	if rest := len(data) - offset; rest > 0 {
		fmt.Printf("\n%d trailing bytes not decoded\n", rest)
	}
	return nil
}

var (
	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	scalarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	bytesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// printTree renders one value per line with indentation, composites first
// as a header line, children below.
func printTree(w io.Writer, v valwire.Value, styled bool, width int) {
	for _, line := range treeLines(v, "", styled) {
		if len(line) > width && width > 4 {
			line = line[:width-3] + "..."
		}
		fmt.Fprintln(w, line)
	}
}

func treeLines(v valwire.Value, indent string, styled bool) []string {
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	kind := paint(kindStyle, v.Kind().String())

	switch v.Kind() {
	case valwire.KindSlice, valwire.KindSliceLike:
		b, _ := v.AsBytes()
		return []string{indent + kind + " " + paint(bytesStyle, formatBytes(b))}

	case valwire.KindOptional:
		inner, ok := v.Inner()
		if !ok {
			return []string{indent + kind + " " + paint(scalarStyle, "none")}
		}
		lines := []string{indent + kind + " " + paint(scalarStyle, "some")}
		return append(lines, treeLines(inner, indent+"  ", styled)...)

	case valwire.KindVector:
		lines := []string{indent + kind + fmt.Sprintf(" (%d elements)", v.Len())}
		for _, e := range v.Elems() {
			lines = append(lines, treeLines(e, indent+"  ", styled)...)
		}
		return lines

	case valwire.KindHashMap:
		lines := []string{indent + kind + fmt.Sprintf(" (%d pairs)", v.Len())}
		for _, p := range v.Pairs() {
			lines = append(lines, indent+"  "+paint(branchStyle, "key:"))
			lines = append(lines, treeLines(p.Key, indent+"    ", styled)...)
			lines = append(lines, indent+"  "+paint(branchStyle, "value:"))
			lines = append(lines, treeLines(p.Val, indent+"    ", styled)...)
		}
		return lines

	default:
		return []string{indent + kind + " " + paint(scalarStyle, scalarText(v))}
	}
}

func scalarText(v valwire.Value) string {
	switch v.Kind() {
	case valwire.KindBool:
		b, _ := v.AsBool()
		return fmt.Sprintf("%t", b)
	case valwire.KindI64:
		n, _ := v.AsI64()
		return fmt.Sprintf("%d", n)
	case valwire.KindI32:
		n, _ := v.AsI32()
		return fmt.Sprintf("%d", n)
	case valwire.KindU8, valwire.KindSmallU8:
		n, _ := v.AsU8()
		return fmt.Sprintf("%d", n)
	case valwire.KindF64:
		f, _ := v.AsF64()
		return fmt.Sprintf("%g", f)
	case valwire.KindF32:
		f, _ := v.AsF32()
		return fmt.Sprintf("%g", f)
	default:
		return v.String()
	}
}

func formatBytes(b []byte) string {
	printable := len(b) > 0
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			printable = false
			break
		}
	}
	if printable {
		return fmt.Sprintf("%q (%d bytes)", b, len(b))
	}
	if len(b) > 32 {
		return fmt.Sprintf("0x%x... (%d bytes)", b[:32], len(b))
	}
	return fmt.Sprintf("0x%x (%d bytes)", b, len(b))
}
