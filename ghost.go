package main

// ghostY is the lowest row where the piece still fits straight below its
// current position.
func ghostY(b *Board, p Piece) int {
	y := p.Y
	for b.FitsAt(p, p.X, y-1, p.Rotation) {
		y--
	}
	return y
}

func ghostCells(b *Board, p Piece) [4]Point {
	return p.CellsAt(p.X, ghostY(b, p), p.Rotation)
}
