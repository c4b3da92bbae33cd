// Package sudoku encodes 9×9 sudoku puzzles as Boltzmann machines: one
// unit per (cell, candidate digit) pair, 729 units in total.
//
// 🚀 How the encoding works
//
//	Every cell owns nine candidate units; in a clean solution exactly one
//	of them is active.  Mutually exclusive candidates are coupled with a
//	strongly negative weight (PairWeight):
//	  • the nine candidates of one cell inhibit each other
//	  • the same digit in two cells sharing a row, column, or box
//	    inhibits itself
//	Every unit carries a small positive bias (DefaultBias) so cells do
//	not simply go dark.  Given digits are pinned: their nine units are
//	one-hot initialized and the whole group is excluded from randomized
//	updates, so the machine anneals only the open cells against the
//	givens' inhibition.
//
// ⚙️ Usage:
//
//	b, err := sudoku.Parse(boardText)
//	m, fixed, err := sudoku.NewMachine(b, boltzmann.WithSeed(42))
//	for i := 0; i < 1000; i++ {
//	    _, _ = m.UpdateOneRandom(temperature, fixed)
//	}
//	state, _ := sudoku.Decode(m)
//	fmt.Print(state) // boxed grid; '_' open, 'X' conflicting
//
// The package only encodes and decodes; annealing strategy (temperature
// play, restarts) belongs to the caller, typically via the anneal package.
package sudoku
