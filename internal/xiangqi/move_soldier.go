package xiangqi

// 兵：未过河只能前进一格；过河后可左右，永不后退
func genSoldierMoves(b *Board, p *Piece, out *[]Square) {
	file, rank := p.sq.File(), p.sq.Rank()
	dir := forward(p.side)

	if r := rank + dir; onBoard(file, r) {
		if to := squareOf(file, r); canLand(b, p.side, to) {
			*out = append(*out, to)
		}
	}

	if ownHalf(p.side, rank) {
		return
	}
	for _, df := range [2]int{-1, +1} {
		f := file + df
		if !onBoard(f, rank) {
			continue
		}
		if to := squareOf(f, rank); canLand(b, p.side, to) {
			*out = append(*out, to)
		}
	}
}
