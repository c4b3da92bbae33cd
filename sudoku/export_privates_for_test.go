package sudoku

// Exported aliases for white-box tests. Not part of the public API.
var (
	BoxCell = boxCell
	Peers   = peers
)
