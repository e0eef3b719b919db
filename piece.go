package main

// PieceKind identifies one of the 7 standard tetrominoes.
type PieceKind int

const (
	PieceI PieceKind = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

var allPieces = [7]PieceKind{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func (k PieceKind) String() string {
	switch k {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	}
	return "?"
}

// Rotation is one of the 4 rotation states: 0 = spawn, 1 = CW, 2 = 180, 3 = CCW.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot1
	Rot2
	Rot3
)

func (r Rotation) CW() Rotation   { return (r + 1) % 4 }
func (r Rotation) CCW() Rotation  { return (r + 3) % 4 }
func (r Rotation) Flip() Rotation { return (r + 2) % 4 }

type Point struct {
	X int
	Y int
}

const (
	spawnX = 3
	spawnY = 20 // above the visible area: rows 0-19 visible, 20-39 buffer
)

// Piece is the falling tetromino: a kind, a rotation state and an origin.
// Cell positions derive from the static offset tables below.
type Piece struct {
	Kind     PieceKind
	Rotation Rotation
	X        int
	Y        int
}

func NewPiece(kind PieceKind) Piece {
	return Piece{Kind: kind, Rotation: Rot0, X: spawnX, Y: spawnY}
}

func (p Piece) Cells() [4]Point {
	return p.CellsAt(p.X, p.Y, p.Rotation)
}

func (p Piece) CellsAt(x, y int, rotation Rotation) [4]Point {
	offsets := pieceCells[p.Kind][rotation]
	var cells [4]Point
	for i, off := range offsets {
		cells[i] = Point{X: x + off.X, Y: y + off.Y}
	}
	return cells
}

// Cell offsets per kind and rotation, SRS orientations.
// X grows rightward, Y grows upward (row 0 is the floor).
var pieceCells = [7][4][4]Point{
	PieceI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{2, 1}, {2, 0}, {2, -1}, {2, -2}},
		{{0, -1}, {1, -1}, {2, -1}, {3, -1}},
		{{1, 1}, {1, 0}, {1, -1}, {1, -2}},
	},
	PieceO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	PieceT: {
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{1, 1}, {1, 0}, {1, -1}, {2, 0}},
		{{0, 0}, {1, 0}, {2, 0}, {1, -1}},
		{{1, 1}, {1, 0}, {1, -1}, {0, 0}},
	},
	PieceS: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 1}, {1, 0}, {2, 0}, {2, -1}},
		{{0, -1}, {1, -1}, {1, 0}, {2, 0}},
		{{0, 1}, {0, 0}, {1, 0}, {1, -1}},
	},
	PieceZ: {
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{2, 1}, {2, 0}, {1, 0}, {1, -1}},
		{{0, 0}, {1, 0}, {1, -1}, {2, -1}},
		{{1, 1}, {1, 0}, {0, 0}, {0, -1}},
	},
	PieceJ: {
		{{0, 1}, {0, 0}, {1, 0}, {2, 0}},
		{{1, 1}, {2, 1}, {1, 0}, {1, -1}},
		{{0, 0}, {1, 0}, {2, 0}, {2, -1}},
		{{1, 1}, {1, 0}, {0, -1}, {1, -1}},
	},
	PieceL: {
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 1}, {1, 0}, {1, -1}, {2, -1}},
		{{0, -1}, {0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {1, 0}, {1, -1}},
	},
}
