package main

import (
	"fmt"
	"os"

	cliadapter "sudoku.dev/engine/internal/adapters/cli"
	engineadapter "sudoku.dev/engine/internal/adapters/engine"
	"sudoku.dev/engine/internal/infrastructure/logging"
	"sudoku.dev/engine/internal/infrastructure/storage"
	"sudoku.dev/engine/internal/usecase"
)

func main() {
	solv := engineadapter.NewSolverAdapter()
	hin := engineadapter.NewHinterAdapter()
	sco := engineadapter.NewScorerAdapter()
	gen := engineadapter.NewGeneratorAdapter()
	st := storage.NewFS("./data")
	uc := usecase.NewService(solv, hin, sco, gen, st)
	uc.Log = logging.New("warn")

	root := cliadapter.NewRootCommand(uc)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
