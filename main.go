// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cybrota/treetrace/sequence"
	"github.com/cybrota/treetrace/tree"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// env is what every command needs: the configuration, a logger and the
// engine options derived from both.
type env struct {
	cfg  *Config
	log  zerolog.Logger
	opts []tree.Option
}

func setup(logOut io.Writer) env {
	InitializeColors()
	cfg, err := LoadConfig()
	if err != nil {
		cfg = defaults()
	}
	log := newLogger(logOut, cfg.Log.Level)
	return env{cfg: cfg, log: log, opts: engineOptions(cfg, log)}
}

// newEngine builds an engine of the named variant, or of the configured
// one when name is empty.
func (e env) newEngine(name string) (tree.Engine[int], error) {
	v := e.cfg.variant()
	if name != "" {
		var err error
		if v, err = tree.ParseVariant(name); err != nil {
			return nil, err
		}
	}
	return tree.New[int](v, e.opts...)
}

func (e env) openLibrary() (*sequence.Library, error) {
	path, err := e.cfg.libraryPath()
	if err != nil {
		return nil, err
	}
	return sequence.OpenLibrary(path)
}

// printSteps writes one line per step followed by the final tree.
func printSteps(w io.Writer, e tree.Engine[int], layout tree.Layout) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range e.Steps() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Index, s.Kind, s.Meta.Case, s.Description)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%s\n\n", renderTree(e, layout, nil))
}

func printReport(w io.Writer, r tree.Report) {
	if r.IsValid {
		fmt.Fprintf(w, "%s✔ all invariants hold%s\n", Green, Reset)
		return
	}
	fmt.Fprintf(w, "%s✘ %d violations%s\n", Error, len(r.Violations), Reset)
	for _, v := range r.Violations {
		fmt.Fprintf(w, "  • %s\n", v)
	}
}

// loadOperations reads a sequence export file, or a saved sequence when
// ref is not a file.
func (e env) loadOperations(ref string) ([]sequence.Operation[int], tree.Variant, error) {
	data, err := os.ReadFile(ref)
	if err == nil {
		ops, err := sequence.ParseOperations[int](data)
		return ops, "", err
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, "", errors.Wrapf(err, "reading %s", ref)
	}
	lib, err := e.openLibrary()
	if err != nil {
		return nil, "", err
	}
	saved, ok := lib.Get(ref)
	if !ok {
		return nil, "", errors.Wrapf(sequence.ErrNotFound, "%s is neither a file nor a saved sequence", ref)
	}
	return saved.Operations, saved.Variant, nil
}

func main() {
	asciiLogo := `
████████╗██████╗ ███████╗███████╗████████╗██████╗  █████╗  ██████╗███████╗
╚══██╔══╝██╔══██╗██╔════╝██╔════╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██╔════╝
   ██║   ██████╔╝█████╗  █████╗     ██║   ██████╔╝███████║██║     █████╗
   ██║   ██╔══██╗██╔══╝  ██╔══╝     ██║   ██╔══██╗██╔══██║██║     ██╔══╝
   ██║   ██║  ██║███████╗███████╗   ██║   ██║  ██║██║  ██║╚██████╗███████╗
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚══════╝
Step through red-black, AVL and binary search tree operations [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var variantFlag string

	play := func(cmd *cobra.Command, args []string) error {
		logPath := filepath.Join(os.TempDir(), "treetrace.log")
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "opening log file %s", logPath)
		}
		defer logFile.Close()

		en := setup(logFile)
		e, err := en.newEngine(variantFlag)
		if err != nil {
			return err
		}
		if script, _ := cmd.Flags().GetString("script"); script != "" {
			ops, err := parseScript(script)
			if err != nil {
				return err
			}
			applyOperations(e, ops)
		}
		if ref, _ := cmd.Flags().GetString("sequence"); ref != "" {
			ops, _, err := en.loadOperations(ref)
			if err != nil {
				return err
			}
			if _, err := sequence.Replay(e, ops); err != nil {
				return err
			}
		}
		lib, err := en.openLibrary()
		if err != nil {
			en.log.Warn().Err(err).Msg("sequence library unavailable")
		}
		return runBubbleTeaApp(e, en.cfg, lib, en.opts, en.log)
	}

	var cmdPlay = &cobra.Command{
		Use:   "play",
		Short: "Launches the step player",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Play opens the terminal step player. Type operations, then walk through every recorded step`),
		Args:  cobra.NoArgs,
		RunE:  play,
	}
	cmdPlay.Flags().String("script", "", "operations to apply before the player opens")
	cmdPlay.Flags().String("sequence", "", "sequence file or saved sequence id to replay")

	var cmdRun = &cobra.Command{
		Use:     "run <script>",
		Short:   "Apply operations and print every step",
		Long:    fmt.Sprintf("%s\n%s", asciiLogo, `Run applies a script such as "insert 10 20 30; delete 20" and prints the recorded steps`),
		Example: `  treetrace run "insert 10 20 30 15 25; delete 20" --variant avl`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			en := setup(os.Stderr)
			ops, err := parseScript(strings.Join(args, " "))
			if err != nil {
				return err
			}
			requested, _ := cmd.Flags().GetStringSlice("traversal")
			orders, err := traversalNames(requested)
			if err != nil {
				return err
			}
			e, err := en.newEngine(variantFlag)
			if err != nil {
				return err
			}
			applied, err := sequence.Replay(e, ops)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSteps(out, e, en.cfg.Layout)
			if err := printTraversals(out, e, orders); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d of %d operations changed the tree\n", applied, len(ops))
			printReport(out, e.Validate())
			return nil
		},
	}
	cmdRun.Flags().StringSlice("traversal", nil, "print traversals of the final tree: inorder, preorder, postorder, levelorder or all")

	var cmdReplay = &cobra.Command{
		Use:   "replay <file|sequence-id>",
		Short: "Replay a sequence export or a saved sequence",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Replay resets a tree and re-applies a recorded operation sequence`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			en := setup(os.Stderr)
			requested, _ := cmd.Flags().GetStringSlice("traversal")
			orders, err := traversalNames(requested)
			if err != nil {
				return err
			}
			ops, savedVariant, err := en.loadOperations(args[0])
			if err != nil {
				return err
			}
			name := variantFlag
			if name == "" {
				name = string(savedVariant)
			}
			e, err := en.newEngine(name)
			if err != nil {
				return err
			}
			if _, err := sequence.Replay(e, ops); err != nil {
				return err
			}
			printSteps(cmd.OutOrStdout(), e, en.cfg.Layout)
			if err := printTraversals(cmd.OutOrStdout(), e, orders); err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), e.Validate())
			return nil
		},
	}
	cmdReplay.Flags().StringSlice("traversal", nil, "print traversals of the final tree: inorder, preorder, postorder, levelorder or all")

	var cmdCompare = &cobra.Command{
		Use:     "compare <script>",
		Short:   "Apply a script to every tree variant and compare the results",
		Long:    fmt.Sprintf("%s\n%s", asciiLogo, `Compare applies the same script to a red-black, an AVL and a plain binary search tree and prints their size, height and balance side by side`),
		Example: `  treetrace compare "insert 1 2 3 4 5 6 7"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			en := setup(os.Stderr)
			ops, err := parseScript(strings.Join(args, " "))
			if err != nil {
				return err
			}
			rows, err := compareVariants(ops, tree.Variants, en.opts)
			if err != nil {
				return err
			}
			en.log.Debug().Int("operations", len(ops)).Msg("compared variants")
			return printComparison(cmd.OutOrStdout(), rows)
		},
	}

	var cmdExport = &cobra.Command{
		Use:   "export <script>",
		Short: "Export the tree or the sequence built by a script",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Export applies a script and writes the final tree as JSON or DOT, or the
operation sequence as JSON`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			en := setup(os.Stderr)
			ops, err := parseScript(strings.Join(args, " "))
			if err != nil {
				return err
			}
			e, err := en.newEngine(variantFlag)
			if err != nil {
				return err
			}
			applyOperations(e, ops)

			format, _ := cmd.Flags().GetString("format")
			text, err := renderExport(e, format, time.Now())
			if err != nil {
				return err
			}
			if toClipboard, _ := cmd.Flags().GetBool("clipboard"); toClipboard {
				return copyToClipboard(text)
			}
			if out, _ := cmd.Flags().GetString("output"); out != "" {
				return errors.Wrapf(os.WriteFile(out, []byte(text+"\n"), 0o644), "writing %s", out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmdExport.Flags().StringP("format", "f", formatTree, "export format: "+strings.Join(exportFormats, ", "))
	cmdExport.Flags().StringP("output", "o", "", "write the export to a file")
	cmdExport.Flags().Bool("clipboard", false, "copy the export to the clipboard")

	var cmdValidate = &cobra.Command{
		Use:   "validate <tree.json>",
		Short: "Check the invariants of an exported tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Validate imports a tree export and checks the invariants of its type`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setup(os.Stderr)
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			x, err := sequence.ImportTree[int](data)
			if err != nil {
				return err
			}
			snap, err := x.Snapshot()
			if err != nil {
				return err
			}
			v := x.Metadata.Type
			if variantFlag != "" {
				if v, err = tree.ParseVariant(variantFlag); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			stats := tree.Stats[int](snap)
			fmt.Fprintf(out, "%s tree with %d nodes (%d red, %d black), height %d\n\n", v, stats.Nodes, stats.Red, stats.Black, stats.Height)
			fmt.Fprintf(out, "%s\n\n", renderTree(snap, tree.DefaultLayout, nil))
			report := tree.Validate[int](snap, v)
			printReport(out, report)
			if !report.IsValid {
				return errors.Newf("%s violates %d invariants", args[0], len(report.Violations))
			}
			return nil
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run randomized operations against the invariant checker",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stress inserts and deletes random values and validates every tree after every operation`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			en := setup(os.Stderr)
			cfg := en.cfg.Stress
			if rounds, _ := cmd.Flags().GetInt("rounds"); rounds > 0 {
				cfg.Rounds = rounds
			}
			seed, _ := cmd.Flags().GetInt64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			variants := tree.Variants
			if variantFlag != "" {
				v, err := tree.ParseVariant(variantFlag)
				if err != nil {
					return err
				}
				variants = []tree.Variant{v}
			}

			en.log.Info().Int64("seed", seed).Int("rounds", cfg.Rounds).Msg("starting stress run")
			res, err := runStress(cfg, variants, seed, en.opts, newStressBar(cfg.Rounds))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d rounds, %d operations, seed %d\n", res.Rounds, res.Operations, seed)
			if len(res.Failures) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s✔ no invariant violations%s\n", Green, Reset)
				return nil
			}
			for _, f := range res.Failures {
				fmt.Fprintf(cmd.OutOrStdout(), "%s✘%s %s\n", Error, Reset, f)
			}
			return errors.Newf("%d stress failures", len(res.Failures))
		},
	}
	cmdStress.Flags().Int("rounds", 0, "number of rounds (default from settings)")
	cmdStress.Flags().Int64("seed", 0, "random seed (default from the clock)")

	var cmdSequences = &cobra.Command{
		Use:   "sequences",
		Short: "Manage saved sequences",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Sequences manages the operation sequences in the library`),
	}

	cmdSequencesList := &cobra.Command{
		Use:   "list",
		Short: "List saved sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := setup(os.Stderr).openLibrary()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ID\tNAME\tVARIANT\tOPERATIONS\tUPDATED\n")
			for _, s := range lib.List() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Variant, len(s.Operations), s.UpdatedAt.Format(time.DateTime))
			}
			return tw.Flush()
		},
	}

	cmdSequencesShow := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved sequence as a sequence export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := setup(os.Stderr).openLibrary()
			if err != nil {
				return err
			}
			s, ok := lib.Get(args[0])
			if !ok {
				return errors.Wrapf(sequence.ErrNotFound, "showing %s", args[0])
			}
			data, err := sequence.MarshalOperations(s.Operations)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmdSequencesSave := &cobra.Command{
		Use:   "save <script>",
		Short: "Save the operations of a script",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			en := setup(os.Stderr)
			lib, err := en.openLibrary()
			if err != nil {
				return err
			}
			ops, err := parseScript(strings.Join(args, " "))
			if err != nil {
				return err
			}
			e, err := en.newEngine(variantFlag)
			if err != nil {
				return err
			}
			// Replaying records the descriptions that go with each operation.
			if _, err := sequence.Replay(e, ops); err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				name = strings.Join(args, " ")
			}
			description, _ := cmd.Flags().GetString("description")
			id, err := lib.Save(name, description, e.Variant(), sequence.FromSteps(e.Steps()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmdSequencesSave.Flags().String("name", "", "name of the sequence (default is the script)")
	cmdSequencesSave.Flags().String("description", "", "description of the sequence")

	cmdSequencesDelete := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := setup(os.Stderr).openLibrary()
			if err != nil {
				return err
			}
			deleted, err := lib.Delete(args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return errors.Wrapf(sequence.ErrNotFound, "deleting %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}

	cmdSequencesRename := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a saved sequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := setup(os.Stderr).openLibrary()
			if err != nil {
				return err
			}
			var description *string
			if cmd.Flags().Changed("description") {
				d, _ := cmd.Flags().GetString("description")
				description = &d
			}
			if err := renameSequence(lib, args[0], args[1], description); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %q\n", args[0], args[1])
			return nil
		},
	}
	cmdSequencesRename.Flags().String("description", "", "also replace the description")

	cmdSequencesDuplicate := &cobra.Command{
		Use:   "duplicate <id> [name]",
		Short: "Copy a saved sequence under a new id",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := setup(os.Stderr).openLibrary()
			if err != nil {
				return err
			}
			id, err := duplicateSequence(lib, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmdSequencesExport := &cobra.Command{
		Use:   "export <file>",
		Short: "Write every saved sequence to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := setup(os.Stderr).openLibrary()
			if err != nil {
				return err
			}
			f, err := os.Create(args[0])
			if err != nil {
				return errors.Wrapf(err, "creating %s", args[0])
			}
			defer f.Close()
			return lib.Export(f)
		},
	}

	cmdSequencesImport := &cobra.Command{
		Use:   "import <file>",
		Short: "Add the sequences of an exported library file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := setup(os.Stderr).openLibrary()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, "opening %s", args[0])
			}
			defer f.Close()
			n, err := lib.Import(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sequences\n", n)
			return nil
		},
	}
	cmdSequences.AddCommand(cmdSequencesList, cmdSequencesShow, cmdSequencesSave, cmdSequencesRename,
		cmdSequencesDuplicate, cmdSequencesDelete, cmdSequencesExport, cmdSequencesImport)

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show settings, creating ~/.treetrace.yaml when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Treetrace usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the treetrace CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Treetrace version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "treetrace",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// Default to the player when no subcommand is provided
		RunE: play,
	}
	rootCmd.Flags().String("script", "", "operations to apply before the player opens")
	rootCmd.Flags().String("sequence", "", "sequence file or saved sequence id to replay")
	rootCmd.PersistentFlags().StringVar(&variantFlag, "variant", "", "tree variant: red-black, avl or bst (default from settings)")

	rootCmd.AddCommand(cmdPlay, cmdRun, cmdReplay, cmdCompare, cmdExport, cmdValidate, cmdStress,
		cmdSequences, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s❌ %v%s\n", Error, err, Reset)
		os.Exit(1)
	}
}
