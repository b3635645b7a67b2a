// Package cli exposes usecase.Service as a Cobra command tree, each
// subcommand a thin wrapper that reads a grid from an argument or stdin
// (the generate subcommands take flags instead) and writes JSON, or a plain
// grid/compact string for solve, generate clues, serialize and
// deserialize, to stdout — the way
// operator-framework-deppy's NewSudokuCommand wires a single cobra.Command
// around a solve call.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sudoku.dev/engine/internal/generator"
	"sudoku.dev/engine/internal/hint"
	"sudoku.dev/engine/internal/usecase"
)

// readGrid returns args[0] if present, otherwise the first line of stdin.
func readGrid(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewRootCommand builds the "sudoku" root command wired to uc.
func NewRootCommand(uc *usecase.Service) *cobra.Command {
	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve, hint, score, and generate classical Sudoku puzzles",
	}

	root.AddCommand(
		newSolveCmd(uc),
		newUniqueCmd(uc),
		newHintCmd(uc),
		newTraceCmd(uc),
		newEvaluateCmd(uc),
		newGenerateCmd(uc),
		newSerializeCmd(uc),
		newDeserializeCmd(uc),
	)
	return root
}

func newSolveCmd(uc *usecase.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve a grid, printing the completed board",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			out, _, err := uc.Solve(cmd.Context(), grid)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Values.String())
			return nil
		},
	}
}

func newUniqueCmd(uc *usecase.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "unique [grid]",
		Short: "Report whether a grid has exactly one solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			unique, stats, err := uc.IsUnique(cmd.Context(), grid)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"unique": unique,
				"nodes":  stats.Nodes,
			})
		},
	}
}

func newHintCmd(uc *usecase.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "hint [grid]",
		Short: "Get the next logical hint for a grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			h, err := uc.GetHint(cmd.Context(), grid)
			if err != nil {
				return err
			}
			if h == nil {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{"found": false})
			}
			info := h.Info()
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{"found": true, "hint": info})
		},
	}
}

func newTraceCmd(uc *usecase.Service) *cobra.Command {
	var stepCap int
	cmd := &cobra.Command{
		Use:   "trace [grid]",
		Short: "Solve a grid step by step with the hint battery",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			if stepCap <= 0 {
				stepCap = hint.DefaultStepCap
			}
			out, trace, err := uc.Trace(cmd.Context(), grid, stepCap)
			if err != nil && err != hint.ErrNoLogicalProgress && err != hint.ErrOverbudget {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"board": out.Values.String(),
				"trace": trace,
			})
		},
	}
	cmd.Flags().IntVar(&stepCap, "step-cap", hint.DefaultStepCap, "maximum trace steps")
	return cmd
}

func newEvaluateCmd(uc *usecase.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate [grid]",
		Short: "Score a puzzle's difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			d, cat, err := uc.EvaluatePuzzleDifficulty(cmd.Context(), grid)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{"difficulty": d, "category": cat})
		},
	}
}

func newGenerateCmd(uc *usecase.Service) *cobra.Command {
	root := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new puzzle",
	}
	root.AddCommand(newGenerateCluesCmd(uc), newGenerateDifficultyCmd(uc), newGenerateCategoryCmd(uc))
	return root
}

func newGenerateCluesCmd(uc *usecase.Service) *cobra.Command {
	var clues int
	cmd := &cobra.Command{
		Use:   "clues",
		Short: "Generate a unique puzzle by removing clues down to N (more remain if no removal keeps it unique)",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := uc.GenerateWithClues(cmd.Context(), clues)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Values.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&clues, "clues", 30, "target clue count")
	return cmd
}

func newGenerateDifficultyCmd(uc *usecase.Service) *cobra.Command {
	var target, tolerance, maxAttempts int
	cmd := &cobra.Command{
		Use:   "difficulty",
		Short: "Generate a puzzle targeting a difficulty score",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := uc.GenerateWithDifficulty(cmd.Context(), generator.Options{
				Target:      target,
				Tolerance:   tolerance,
				MaxAttempts: maxAttempts,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&target, "target", 50, "target difficulty score (1-100)")
	cmd.Flags().IntVar(&tolerance, "tolerance", 5, "acceptable distance from target")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 2000, "maximum evaluation budget")
	return cmd
}

func newGenerateCategoryCmd(uc *usecase.Service) *cobra.Command {
	var maxAttempts int
	cmd := &cobra.Command{
		Use:   "category [name]",
		Short: "Generate a puzzle in a named difficulty category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("category name required")
			}
			res, err := uc.GenerateByCategory(cmd.Context(), args[0], generator.Options{MaxAttempts: maxAttempts})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 2000, "maximum evaluation budget")
	return cmd
}

func newSerializeCmd(uc *usecase.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "serialize [grid]",
		Short: "Compact-serialize a fully placed grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			st, err := uc.ParseGrid(grid)
			if err != nil {
				return err
			}
			compact, err := uc.Serialize(st.Values)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), compact)
			return nil
		},
	}
}

func newDeserializeCmd(uc *usecase.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "deserialize [compact]",
		Short: "Expand a compact-serialized grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			v, err := uc.Deserialize(input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
}
