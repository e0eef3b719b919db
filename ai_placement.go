package main

import "sort"

// Placement is one candidate landing spot with its heuristic score.
type Placement struct {
	Kind     PieceKind
	Rotation Rotation
	X        int
	Y        int
	Score    float64
	UseHold  bool
}

// generatePlacements enumerates every reachable hard-drop landing for the
// piece, scored against the weights and sorted best first.
func generatePlacements(b *Board, kind PieceKind, w EvalWeights, useHold bool) []Placement {
	var placements []Placement

	for rot := Rot0; rot <= Rot3; rot++ {
		for x := -2; x < 12; x++ {
			piece := NewPiece(kind)
			piece.X = x
			piece.Rotation = rot

			if !b.FitsAt(piece, x, piece.Y, rot) {
				// The spawn row may be blocked; scan downward for an entry.
				found := false
				for y := piece.Y - 1; y >= 0; y-- {
					if b.FitsAt(piece, x, y, rot) {
						piece.Y = y
						found = true
						break
					}
				}
				if !found {
					continue
				}
			}

			test := piece
			hardDrop(b, &test)
			if !b.FitsAt(test, test.X, test.Y, test.Rotation) {
				continue
			}

			after := *b
			after.Lock(test)
			full := after.FullLines()
			after.ClearLines(full)
			score := evaluate(&after, len(full), w)

			placements = append(placements, Placement{
				Kind:     kind,
				Rotation: rot,
				X:        test.X,
				Y:        test.Y,
				Score:    score,
				UseHold:  useHold,
			})
		}
	}

	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Score > placements[j].Score
	})

	// Different entry paths can land on the same cell; keep the best.
	seen := make(map[[3]int]struct{}, len(placements))
	deduped := placements[:0]
	for _, p := range placements {
		key := [3]int{p.X, p.Y, int(p.Rotation)}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, p)
	}
	return deduped
}

// findBestPlacement picks the top placement for the current piece, or for
// the held piece when holding scores strictly better.
func findBestPlacement(b *Board, current PieceKind, held *PieceKind, w EvalWeights, useHold bool) (Placement, bool) {
	var best Placement
	have := false

	if placements := generatePlacements(b, current, w, false); len(placements) > 0 {
		best = placements[0]
		have = true
	}

	if useHold && held != nil {
		if placements := generatePlacements(b, *held, w, true); len(placements) > 0 {
			if !have || placements[0].Score > best.Score {
				best = placements[0]
				have = true
			}
		}
	}

	return best, have
}
