package engine

// Scores returned by Evaluate for the three terminal outcomes.
const (
	ScoreComputerWin = 1
	ScoreHumanWin    = -1
	ScoreDraw        = 0
)

// Evaluate computes the game-theoretic value of the board for the computer
// assuming both sides play optimally. maximizing is true when it is the
// computer's turn. The search is exhaustive: every candidate move is placed,
// evaluated recursively and cleared again, so the board is left exactly as
// it was handed in.
func Evaluate(board *Board, maximizing bool) int {
	switch {
	case board.HasWon(Computer):
		return ScoreComputerWin
	case board.HasWon(Human):
		return ScoreHumanWin
	case board.IsDraw():
		return ScoreDraw
	}

	if maximizing {
		best := ScoreHumanWin - 1
		for _, move := range board.AvailableMoves() {
			board.Place(move, Computer)
			if score := Evaluate(board, false); score > best {
				best = score
			}
			board.Clear(move)
		}

		return best
	}

	best := ScoreComputerWin + 1
	for _, move := range board.AvailableMoves() {
		board.Place(move, Human)
		if score := Evaluate(board, true); score < best {
			best = score
		}
		board.Clear(move)
	}

	return best
}

// FindBestMove returns the move that maximizes the computer's guaranteed
// outcome from the given board. Candidates are tried in AvailableMoves order
// and ties keep the first move encountered, so the result is deterministic.
// ok is false when the board has no empty cell left.
func FindBestMove(board *Board) (Move, bool) {
	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return Move{}, false
	}

	bestMove := moves[0]
	bestScore := ScoreHumanWin - 1

	for _, move := range moves {
		board.Place(move, Computer)
		score := Evaluate(board, false)
		board.Clear(move)

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, true
}
