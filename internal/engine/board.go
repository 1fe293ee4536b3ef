package engine

const Size = 3

// Mark is the value occupying a board cell.
type Mark string

const (
	Empty    Mark = ""
	Human    Mark = "X"
	Computer Mark = "O"
)

// WinLines - all 8 winning lines: 3 rows, 3 columns and both diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Move identifies one cell by its (row, column) coordinate, each in [0,2].
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InRange reports whether the move addresses a cell on the board.
func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Board holds the 3x3 grid of cell marks, row-major.
type Board struct {
	Cells [Size][Size]Mark `json:"cells"`
}

// NewBoard returns a board with all cells empty.
func NewBoard() *Board {
	return &Board{}
}

// AvailableMoves returns every currently empty cell in row-major order.
// The order is deterministic, the slice is freshly computed on each call.
func (that *Board) AvailableMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.Cells[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Place sets the cell at move to mark. The cell must be empty; callers
// validate occupancy before placing.
func (that *Board) Place(move Move, mark Mark) {
	that.Cells[move.Row][move.Col] = mark
}

// Clear resets the cell at move back to empty.
func (that *Board) Clear(move Move) {
	that.Cells[move.Row][move.Col] = Empty
}

// At returns the mark at move.
func (that *Board) At(move Move) Mark {
	return that.Cells[move.Row][move.Col]
}

// IsFull reports whether no empty cell remains.
func (that *Board) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.Cells[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

// HasWon reports whether mark occupies all three cells of any row, column
// or diagonal. The empty mark never wins.
func (that *Board) HasWon(mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, line := range WinLines {
		if that.At(line[0]) == mark && that.At(line[1]) == mark && that.At(line[2]) == mark {
			return true
		}
	}

	return false
}

// IsDraw reports whether the board is full with no winner.
func (that *Board) IsDraw() bool {
	if that.HasWon(Human) || that.HasWon(Computer) {
		return false
	}

	return that.IsFull()
}
