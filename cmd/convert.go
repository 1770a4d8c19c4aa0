package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cottand/nform/nform"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var ConvertCmd = &cobra.Command{
	Use:   "convert [formula]",
	Short: "Convert a formula to conjunctive and disjunctive normal form",
	Long: `Convert a propositional formula to its simplified conjunctive and
disjunctive normal forms.

Formulas use /\ (and), \/ (or), ~ (not), -> (implication) and parentheses,
over variables made of a letter and optional digits. Without a formula
argument, one line is read from standard input.`,
	Example: `  nform convert '(A->B)->C'
  nform convert --form cnf --verify '~(A/\B)'
  nform convert --file formulas.txt --jobs 4`,
	RunE:         runConvert,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

var (
	convertLenient bool
	convertVerify  bool
	convertFile    string
	convertJobs    int
	convertForm    string
)

func init() {
	ConvertCmd.Flags().BoolVar(&convertLenient, "lenient", false, "skip illegal characters instead of failing")
	ConvertCmd.Flags().BoolVar(&convertVerify, "verify", false, "check the results are equivalent to the input")
	ConvertCmd.Flags().StringVarP(&convertFile, "file", "f", "", "convert every line of a file, - for standard input")
	ConvertCmd.Flags().IntVarP(&convertJobs, "jobs", "j", 0, "formulas converted concurrently with --file")
	ConvertCmd.Flags().StringVar(&convertForm, "form", "both", "forms to print (cnf|dnf|both)")
}

type convertSettings struct {
	opts    nform.Options
	jobs    int
	showCNF bool
	showDNF bool
}

func resolveConvertSettings(cmd *cobra.Command) (convertSettings, error) {
	s := convertSettings{
		opts: nform.Options{Lenient: settings.Lenient, Verify: settings.Verify},
		jobs: settings.Jobs,
	}
	if cmd.Flags().Changed("lenient") {
		s.opts.Lenient = convertLenient
	}
	if cmd.Flags().Changed("verify") {
		s.opts.Verify = convertVerify
	}
	if cmd.Flags().Changed("jobs") {
		if convertJobs < 1 {
			return s, fmt.Errorf("--jobs must be at least 1, got %d", convertJobs)
		}
		s.jobs = convertJobs
	}
	switch strings.ToLower(convertForm) {
	case "both":
		s.showCNF, s.showDNF = true, true
	case "cnf":
		s.showCNF = true
	case "dnf":
		s.showDNF = true
	default:
		return s, fmt.Errorf("unknown form %q, expected cnf, dnf or both", convertForm)
	}
	return s, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	s, err := resolveConvertSettings(cmd)
	if err != nil {
		return err
	}
	if convertFile != "" {
		if len(args) > 0 {
			return fmt.Errorf("cannot convert both a formula argument and --file")
		}
		return convertBatch(cmd, s)
	}

	var formula string
	if len(args) == 1 {
		formula = args[0]
	} else {
		formula, err = promptFormula(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	res, err := nform.Convert(formula, s.opts)
	if err != nil {
		return fmt.Errorf("invalid formula:\n%s", nform.FormatError(err, formula))
	}
	printWarnings(cmd.ErrOrStderr(), res.Diagnostics.Messages(formula))
	printResult(cmd.OutOrStdout(), res, s, "")
	return nil
}

// promptFormula reads a single line from in, prompting first if in is a terminal
func promptFormula(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(out, "Enter a formula: ")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("could not read formula: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no formula given")
	}
	return line, nil
}

func printResult(w io.Writer, res *nform.Result, s convertSettings, indent string) {
	if s.showCNF {
		printLabelled(w, indent+"CNF", res.CNF)
	}
	if s.showDNF {
		printLabelled(w, indent+"DNF", res.DNF)
	}
}

type batchEntry struct {
	line    int
	formula string
	res     *nform.Result
	err     error
}

// readBatch returns the formulas of r, one per line. Blank lines and
// lines starting with # are skipped.
func readBatch(r io.Reader) ([]batchEntry, error) {
	var entries []batchEntry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entries = append(entries, batchEntry{line: line, formula: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// convertAll converts every entry with at most jobs conversions running
// at once. Results are stored in place, so entries keep their order.
func convertAll(ctx context.Context, entries []batchEntry, opts nform.Options, jobs int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(entries))))
	for i := range entries {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			entries[i].res, entries[i].err = nform.Convert(entries[i].formula, opts)
			return nil
		})
	}
	return g.Wait()
}

func convertBatch(cmd *cobra.Command, s convertSettings) error {
	var in io.Reader
	if convertFile == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(convertFile)
		if err != nil {
			return fmt.Errorf("could not open formula file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}
	entries, err := readBatch(in)
	if err != nil {
		return fmt.Errorf("could not read formula file: %w", err)
	}
	if err := convertAll(cmd.Context(), entries, s.opts, s.jobs); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, e := range entries {
		_, _ = fmt.Fprintf(out, "%d: %s\n", e.line, e.formula)
		if e.err != nil {
			failed++
			PrintError(out, fmt.Errorf("line %d:\n%s", e.line, nform.FormatError(e.err, e.formula)))
			continue
		}
		printWarnings(cmd.ErrOrStderr(), e.res.Diagnostics.Messages(e.formula))
		printResult(out, e.res, s, "  ")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d formulas could not be converted", failed, len(entries))
	}
	return nil
}
