package main

// evaluate scores a post-lock board. Higher is better.
func evaluate(b *Board, linesCleared int, w EvalWeights) float64 {
	score := w.AggregateHeight * float64(b.AggregateHeight())
	score += w.Holes * float64(b.Holes())
	score += w.Bumpiness * float64(b.Bumpiness())
	score += w.LinesCleared * float64(linesCleared)
	score += w.Wells * float64(countWells(b))
	score += w.ColumnTransitions * float64(columnTransitions(b))
	score += w.RowTransitions * float64(rowTransitions(b))
	if linesCleared > 0 && b.Empty() {
		score += w.PerfectClear
	}
	return score
}

// countWells sums well depths. A well is a column strictly lower than
// both neighbors; the walls count as full height.
func countWells(b *Board) int {
	var heights [boardWidth]int
	for col := 0; col < boardWidth; col++ {
		heights[col] = b.ColumnHeight(col)
	}

	wells := 0
	for col := 0; col < boardWidth; col++ {
		left := boardHeight
		if col > 0 {
			left = heights[col-1]
		}
		right := boardHeight
		if col < boardWidth-1 {
			right = heights[col+1]
		}
		h := heights[col]
		if h < left && h < right {
			min := left
			if right < min {
				min = right
			}
			wells += min - h
		}
	}
	return wells
}

// columnTransitions counts vertical filled/empty boundaries. The floor
// counts as filled.
func columnTransitions(b *Board) int {
	transitions := 0
	for col := 0; col < boardWidth; col++ {
		prev := true
		for row := 0; row < boardHeight; row++ {
			filled := b.At(col, row).Occupied()
			if filled != prev {
				transitions++
			}
			prev = filled
		}
	}
	return transitions
}

// rowTransitions counts horizontal filled/empty boundaries. Both walls
// count as filled.
func rowTransitions(b *Board) int {
	transitions := 0
	for row := 0; row < boardHeight; row++ {
		prev := true
		for col := 0; col < boardWidth; col++ {
			filled := b.At(col, row).Occupied()
			if filled != prev {
				transitions++
			}
			prev = filled
		}
		if !prev {
			transitions++
		}
	}
	return transitions
}
