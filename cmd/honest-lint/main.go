// honest-lint checks plain-text files for writing issues from the command line
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"honest/internal/core/lexicon"
	"honest/internal/core/readability"
	"honest/internal/core/scan"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var kindPrinters = map[scan.Kind]*color.Color{
	scan.KindPassiveVoice:       color.New(color.FgYellow),
	scan.KindWeakWords:          color.New(color.FgRed),
	scan.KindLongSentences:      color.New(color.FgMagenta),
	scan.KindJargon:             color.New(color.FgBlue),
	scan.KindAdjectivesAdverbs:  color.New(color.FgGreen),
	scan.KindSimpleAlternatives: color.New(color.FgHiRed),
	scan.KindConfusedSynonyms:   color.New(color.FgHiYellow),
	scan.KindRepeatedWords:      color.New(color.FgHiBlue),
	scan.KindCinnamonWords:      color.New(color.FgHiMagenta),
}

type options struct {
	only        []string
	skip        []string
	cinnamon    []string
	readable    bool
	noColor     bool
	maxTextShow int
}

func main() {
	opt := &options{}

	root := &cobra.Command{
		Use:   "honest-lint [files...]",
		Short: "Check plain text for writing issues and readability",
		Long: "honest-lint runs the writing-quality passes over each file " +
			"(or stdin when no files are given) and prints positioned issues. " +
			"Exits nonzero when any issue is found.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opt)
		},
	}

	root.Flags().StringSliceVar(&opt.only, "only", nil, "run only these passes (comma separated pass names)")
	root.Flags().StringSliceVar(&opt.skip, "skip", nil, "skip these passes")
	root.Flags().StringSliceVar(&opt.cinnamon, "cinnamon", nil, "extra cinnamon words to flag")
	root.Flags().BoolVar(&opt.readable, "readability", false, "print the readability summary per file")
	root.Flags().BoolVar(&opt.noColor, "no-color", false, "disable colored output")
	root.Flags().IntVar(&opt.maxTextShow, "max-text", 60, "truncate matched text beyond this many characters")

	if err := root.Execute(); err != nil {
		os.Exit(2)
	}
}

func run(cmd *cobra.Command, args []string, opt *options) error {
	if opt.noColor {
		color.NoColor = true
	}

	scanner := scan.New(lexicon.MustLoad())
	if err := configure(scanner, opt); err != nil {
		return err
	}

	total := 0
	if len(args) == 0 {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		total += report(cmd.OutOrStdout(), "<stdin>", string(text), scanner, opt)
	}
	for _, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		total += report(cmd.OutOrStdout(), path, string(text), scanner, opt)
	}

	if total > 0 {
		return fmt.Errorf("%d issue(s) found", total)
	}
	return nil
}

func configure(scanner *scan.Scanner, opt *options) error {
	if len(opt.only) > 0 {
		for _, k := range scan.Kinds() {
			scanner.Config().SetEnabled(k, false)
		}
		for _, name := range opt.only {
			k, ok := scan.ParseKind(strings.TrimSpace(name))
			if !ok {
				return fmt.Errorf("unknown pass %q", name)
			}
			scanner.Config().SetEnabled(k, true)
		}
	}
	for _, name := range opt.skip {
		k, ok := scan.ParseKind(strings.TrimSpace(name))
		if !ok {
			return fmt.Errorf("unknown pass %q", name)
		}
		scanner.Config().SetEnabled(k, false)
	}
	for _, w := range opt.cinnamon {
		scanner.Registry().Add(w)
	}
	return nil
}

func report(w io.Writer, name, text string, scanner *scan.Scanner, opt *options) int {
	issues := scanner.CheckText(text)
	lines := newLineIndex(text)

	for _, is := range issues {
		line, col := lines.locate(is.Start)
		printer := kindPrinters[is.Kind]
		fmt.Fprintf(w, "%s:%d:%d: %s: %s",
			name, line, col, printer.Sprint(is.Kind.String()), truncate(is.Text, opt.maxTextShow))
		if is.Suggestion != "" {
			fmt.Fprintf(w, " (%s)", is.Suggestion)
		}
		fmt.Fprintln(w)
	}

	if opt.readable {
		m := readability.Analyze(text)
		band := kindBandPrinter(m)
		fmt.Fprintf(w, "%s: %s\n", name, band.Sprint(readability.FormatCompact(m)))
	}
	return len(issues)
}

func kindBandPrinter(m readability.Metrics) *color.Color {
	switch readability.Band(m.AvgGrade) {
	case readability.BandEasy:
		return color.New(color.FgGreen)
	case readability.BandModerate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// lineIndex maps code-point offsets to 1-based line and column numbers
type lineIndex struct {
	// starts[i] is the code-point offset where line i+1 begins
	starts []int
}

func newLineIndex(text string) *lineIndex {
	idx := &lineIndex{starts: []int{0}}
	pos := 0
	for _, r := range text {
		pos++
		if r == '\n' {
			idx.starts = append(idx.starts, pos)
		}
	}
	return idx
}

func (li *lineIndex) locate(offset int) (line, col int) {
	lo, hi := 0, len(li.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - li.starts[lo] + 1
}
