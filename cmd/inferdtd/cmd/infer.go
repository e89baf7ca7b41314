// File: infer.go
// Role: the "infer" subcommand: XML files in, DTD on stdout.
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mvaled/inferdtd"
	"github.com/mvaled/inferdtd/dtd"
	"github.com/mvaled/inferdtd/reterm"
	"github.com/mvaled/inferdtd/xmlseq"
)

func newInferCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "infer FILE...",
		Short: "Infer DTD element declarations from sample XML files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := loadCorpus(args)
			if err != nil {
				return err
			}
			return runInfer(cmd, corpus, quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostics for elements that fail to reduce")
	return cmd
}

// loadCorpus parses every file and merges their per-tag sample sequences.
func loadCorpus(files []string) (xmlseq.Corpus, error) {
	corpus := make(xmlseq.Corpus)
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("inferdtd: %s: %w", path, err)
		}
		root, err := xmlseq.Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("inferdtd: %s: %w", path, err)
		}
		corpus = xmlseq.Merge(corpus, xmlseq.ExtractSequences(root))
	}
	return corpus, nil
}

// runInfer prints one DTD element declaration per element name in corpus,
// in deterministic (sorted) order, and reports a diagnostic to stderr for
// every element whose samples do not reduce to a final SORE.
func runInfer(cmd *cobra.Command, corpus xmlseq.Corpus, quiet bool) error {
	names := make([]string, 0, len(corpus))
	for name := range corpus {
		names = append(names, string(name))
	}
	sort.Strings(names)

	var failures []string
	out := cmd.OutOrStdout()

	for _, name := range names {
		tag := reterm.Symbol(name)
		samples := corpus[tag]

		if allEmpty(samples) {
			fmt.Fprintln(out, dtd.FormatEmpty(tag))
			continue
		}

		term, ok := inferdtd.InferSORE(inferdtd.InferAutomaton(samples))
		if !ok {
			failures = append(failures, name)
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "inferdtd: %s: could not reduce to a final SORE\n", name)
			}
			continue
		}
		fmt.Fprintln(out, dtd.FormatElement(tag, term))
	}

	if len(failures) > 0 {
		return fmt.Errorf("inferdtd: %d element(s) failed to reduce: %v", len(failures), failures)
	}
	return nil
}

func allEmpty(samples [][]reterm.Symbol) bool {
	for _, s := range samples {
		if len(s) > 0 {
			return false
		}
	}
	return true
}

