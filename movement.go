package main

func tryMoveLeft(b *Board, p *Piece) bool {
	if b.FitsAt(*p, p.X-1, p.Y, p.Rotation) {
		p.X--
		return true
	}
	return false
}

func tryMoveRight(b *Board, p *Piece) bool {
	if b.FitsAt(*p, p.X+1, p.Y, p.Rotation) {
		p.X++
		return true
	}
	return false
}

func tryMoveDown(b *Board, p *Piece) bool {
	if b.FitsAt(*p, p.X, p.Y-1, p.Rotation) {
		p.Y--
		return true
	}
	return false
}

// hardDrop moves the piece straight down to its resting position and
// returns the number of cells travelled.
func hardDrop(b *Board, p *Piece) int {
	start := p.Y
	for b.FitsAt(*p, p.X, p.Y-1, p.Rotation) {
		p.Y--
	}
	return start - p.Y
}

// tryRotate attempts the rotation with SRS kicks. On success the piece is
// moved to the kicked position and the applied kick offset is returned.
func tryRotate(b *Board, p *Piece, target Rotation) (Point, bool) {
	for _, kick := range kicks(p.Kind, p.Rotation, target) {
		if b.FitsAt(*p, p.X+kick.X, p.Y+kick.Y, target) {
			p.X += kick.X
			p.Y += kick.Y
			p.Rotation = target
			return kick, true
		}
	}
	return Point{}, false
}

func isGrounded(b *Board, p Piece) bool {
	return !b.FitsAt(p, p.X, p.Y-1, p.Rotation)
}

// detectSpin classifies a spin for a piece about to lock. Only runs when
// the last successful action was a rotation; T uses the 3-corner rule,
// everything else (except O) the all-spin immobility test.
func detectSpin(b *Board, p Piece, lastWasRotation bool, lastKick Point) SpinType {
	if !lastWasRotation {
		return SpinNone
	}
	switch p.Kind {
	case PieceT:
		return detectTSpin(b, p, lastKick)
	case PieceO:
		return SpinNone
	default:
		return detectAllSpin(b, p)
	}
}

func detectTSpin(b *Board, p Piece, lastKick Point) SpinType {
	// The T center sits at offset (1, 0) from the origin in every rotation.
	cx, cy := p.X+1, p.Y

	corners := [4]bool{
		cornerOccupied(b, cx-1, cy+1), // top-left
		cornerOccupied(b, cx+1, cy+1), // top-right
		cornerOccupied(b, cx+1, cy-1), // bottom-right
		cornerOccupied(b, cx-1, cy-1), // bottom-left
	}

	// Front corners face the direction the T points, back corners the opening.
	var front, back [2]bool
	switch p.Rotation {
	case Rot0:
		front = [2]bool{corners[0], corners[1]}
		back = [2]bool{corners[2], corners[3]}
	case Rot1:
		front = [2]bool{corners[1], corners[2]}
		back = [2]bool{corners[0], corners[3]}
	case Rot2:
		front = [2]bool{corners[2], corners[3]}
		back = [2]bool{corners[0], corners[1]}
	case Rot3:
		front = [2]bool{corners[0], corners[3]}
		back = [2]bool{corners[1], corners[2]}
	}

	frontCount := countTrue(front)
	backCount := countTrue(back)
	if frontCount+backCount < 3 {
		return SpinNone
	}
	if frontCount == 2 && backCount >= 1 {
		return SpinTSpin
	}
	if backCount == 2 && frontCount >= 1 {
		// The deep TST-style kick upgrades a mini to a full spin.
		if (lastKick.X == 1 || lastKick.X == -1) && lastKick.Y == -2 {
			return SpinTSpin
		}
		return SpinMiniTSpin
	}
	return SpinNone
}

// detectAllSpin: the piece is immobile in all four cardinal directions.
func detectAllSpin(b *Board, p Piece) SpinType {
	blockedUp := !b.FitsAt(p, p.X, p.Y+1, p.Rotation)
	blockedDown := !b.FitsAt(p, p.X, p.Y-1, p.Rotation)
	blockedLeft := !b.FitsAt(p, p.X-1, p.Y, p.Rotation)
	blockedRight := !b.FitsAt(p, p.X+1, p.Y, p.Rotation)
	if blockedUp && blockedDown && blockedLeft && blockedRight {
		return SpinAll
	}
	return SpinNone
}

func cornerOccupied(b *Board, x, y int) bool {
	if x < 0 || x >= boardWidth || y < 0 {
		return true
	}
	return b.At(x, y).Occupied()
}

func countTrue(pair [2]bool) int {
	n := 0
	for _, v := range pair {
		if v {
			n++
		}
	}
	return n
}
