package main

// SRS wall kicks with SRS+ style 180 tables. kicks returns the ordered
// candidate offsets to try for a rotation transition; the first that fits
// wins. The tables are literal: the exact sequences govern rotation feel.
func kicks(kind PieceKind, from, to Rotation) []Point {
	if kind == PieceO {
		return kicksO
	}
	diff := (int(from) - int(to) + 4) % 4
	if diff == 2 {
		if kind == PieceI {
			return i180Kicks[[2]Rotation{from, to}]
		}
		return normal180Kicks[[2]Rotation{from, to}]
	}
	if kind == PieceI {
		return iKicks[[2]Rotation{from, to}]
	}
	return normalKicks[[2]Rotation{from, to}]
}

var kicksO = []Point{{0, 0}}

// Standard SRS kicks for J/L/S/T/Z.
var normalKicks = map[[2]Rotation][]Point{
	{Rot0, Rot1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{Rot1, Rot0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{Rot1, Rot2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{Rot2, Rot1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{Rot2, Rot3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{Rot3, Rot2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{Rot3, Rot0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{Rot0, Rot3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

// SRS kicks for the I piece.
var iKicks = map[[2]Rotation][]Point{
	{Rot0, Rot1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{Rot1, Rot0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{Rot1, Rot2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{Rot2, Rot1}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{Rot2, Rot3}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{Rot3, Rot2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{Rot3, Rot0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{Rot0, Rot3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

// 180 kicks for J/L/S/T/Z.
var normal180Kicks = map[[2]Rotation][]Point{
	{Rot0, Rot2}: {{0, 0}, {0, 1}, {1, 1}, {-1, 1}, {1, 0}, {-1, 0}},
	{Rot2, Rot0}: {{0, 0}, {0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0}},
	{Rot1, Rot3}: {{0, 0}, {1, 0}, {1, 2}, {1, 1}, {0, 2}, {0, 1}},
	{Rot3, Rot1}: {{0, 0}, {-1, 0}, {-1, 2}, {-1, 1}, {0, 2}, {0, 1}},
}

// 180 kicks for the I piece.
var i180Kicks = map[[2]Rotation][]Point{
	{Rot0, Rot2}: {{0, 0}, {-1, 0}, {-2, 0}, {1, 0}, {2, 0}, {0, 1}},
	{Rot2, Rot0}: {{0, 0}, {1, 0}, {2, 0}, {-1, 0}, {-2, 0}, {0, -1}},
	{Rot1, Rot3}: {{0, 0}, {0, 1}, {0, 2}, {0, -1}, {0, -2}, {-1, 0}},
	{Rot3, Rot1}: {{0, 0}, {0, 1}, {0, 2}, {0, -1}, {0, -2}, {1, 0}},
}
