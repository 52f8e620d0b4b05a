package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/argp"

	"github.com/tdewolff/linebreak"
	"github.com/tdewolff/linebreak/measure"
	"github.com/tdewolff/linebreak/notation"
	"github.com/tdewolff/linebreak/text"
)

type Typeset struct {
	Font     string  `short:"f" desc:"Font file, measures in terminal cells if not set"`
	Latin    bool    `desc:"Measure with Latin Modern Roman"`
	Index    int     `desc:"Font index for font collections"`
	Size     float64 `short:"s" default:"10" desc:"Font size"`
	Engine   string  `short:"e" default:"sfnt" desc:"Font measuring engine: sfnt, x, or shaping"`
	Indent   float64 `default:"0" desc:"Indentation of the first line"`
	Width    float64 `short:"w" default:"60" desc:"Line width"`
	Greedy   bool    `short:"g" desc:"Use first-fit instead of optimal line breaking"`
	Columns  int     `short:"c" default:"0" desc:"Output columns of a line, the line width if zero"`
	Notation bool    `short:"n" desc:"Input is an item list in notation"`
	JSON     bool    `desc:"Output lines as JSON"`
	Verbose  bool    `short:"v" desc:"Print line breaking attempts"`
	Output   string  `short:"o" desc:"Output file"`
	Input    string  `index:"0" desc:"Input file, stdin if not set"`
}

type Items struct {
	Font   string  `short:"f" desc:"Font file, measures in terminal cells if not set"`
	Latin  bool    `desc:"Measure with Latin Modern Roman"`
	Index  int     `desc:"Font index for font collections"`
	Size   float64 `short:"s" default:"10" desc:"Font size"`
	Engine string  `short:"e" default:"sfnt" desc:"Font measuring engine: sfnt, x, or shaping"`
	Indent float64 `default:"0" desc:"Indentation of the first line"`
	Output string  `short:"o" desc:"Output file"`
	Input  string  `index:"0" desc:"Input file, stdin if not set"`
}

func main() {
	root := argp.NewCmd(&Typeset{}, "Paragraph line breaking using the Knuth-Plass algorithm")
	root.AddCmd(&Items{}, "items", "Output the box, glue, and penalty items of text")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Typeset) Run() error {
	if !(0.0 < cmd.Width) {
		fmt.Println("ERROR: line width must be positive")
		return argp.ShowUsage
	}

	b, err := readInput(cmd.Input)
	if err != nil {
		return err
	}

	var typesetter *linebreak.Typesetter
	var paragraphs []text.Items
	if cmd.Notation {
		items, err := notation.Parse(bytes.NewReader(b))
		if err != nil {
			return err
		}
		typesetter = linebreak.New(nil)
		paragraphs = []text.Items{items}
	} else {
		m, err := newMeasurer(cmd.Font, cmd.Latin, cmd.Index, cmd.Size, cmd.Engine)
		if err != nil {
			return err
		}
		typesetter = linebreak.New(m)
		typesetter.Indent = cmd.Indent
		paragraphs = typesetter.Items(string(b))
	}

	if cmd.Greedy {
		typesetter.Linebreaker = text.Greedy{}
	} else if cmd.Verbose {
		typesetter.Linebreaker = text.Fallback{
			Parameters: text.DefaultParameters,
			Trace: func(attempt int, params text.Parameters, err error) {
				status := "ok"
				if err != nil {
					status = err.Error()
				}
				fmt.Fprintf(os.Stderr, "attempt %d (upper=%g looseness=%d overfull=%v emergency=%g): %s\n", attempt, params.UpperAdjustmentRatio, params.Looseness, params.AllowOverfull, params.EmergencyStretch, status)
			},
		}
	}

	result, err := typesetter.Break(context.Background(), paragraphs, cmd.Width)
	if err != nil {
		return err
	}

	return writeOutput(cmd.Output, func(w io.Writer) error {
		if cmd.JSON {
			return writeJSON(w, result)
		}
		columns := cmd.Columns
		if columns <= 0 {
			columns = int(math.Ceil(cmd.Width))
		}
		return writeGrid(w, result, cmd.Width, columns)
	})
}

func (cmd *Items) Run() error {
	b, err := readInput(cmd.Input)
	if err != nil {
		return err
	}

	m, err := newMeasurer(cmd.Font, cmd.Latin, cmd.Index, cmd.Size, cmd.Engine)
	if err != nil {
		return err
	}
	typesetter := linebreak.New(m)
	typesetter.Indent = cmd.Indent

	return writeOutput(cmd.Output, func(w io.Writer) error {
		for i, items := range typesetter.Items(string(b)) {
			if i != 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "# paragraph %d\n", i+1)
			if _, err := io.WriteString(w, notation.Format(items)); err != nil {
				return err
			}
		}
		return nil
	})
}

// newMeasurer measures in terminal cells when no font is given
func newMeasurer(filename string, latin bool, index int, size float64, engine string) (text.Measurer, error) {
	if filename == "" && !latin {
		return measure.Mono{Cell: 1.0}, nil
	}

	b := lmroman10regular.TTF
	if filename != "" {
		var err error
		if b, err = os.ReadFile(filename); err != nil {
			return nil, err
		}
	}
	return measure.New(measure.Engine(engine), b, index, size)
}

func readInput(filename string) ([]byte, error) {
	if filename == "" || filename == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}

func openOutput(filename string) (io.Writer, func() error, error) {
	if filename == "" || filename == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// writeOutput writes to the output file or stdout, the error of closing the file is returned as well
func writeOutput(filename string, write func(io.Writer) error) (err error) {
	w, closer, err := openOutput(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer(); err == nil {
			err = cerr
		}
	}()
	return write(w)
}
