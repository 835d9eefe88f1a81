package xiangqi

// 8 种“日”字：终点 + 马腿
var horseLegMoves = [8]struct {
	Df, Dr int // 终点
	Lf, Lr int // 马腿
}{
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{+2, +1, +1, 0},
	{+2, -1, +1, 0},
	{-2, +1, -1, 0},
	{-2, -1, -1, 0},
}

func genHorseMoves(b *Board, p *Piece, out *[]Square) {
	file, rank := p.sq.File(), p.sq.Rank()
	for _, m := range horseLegMoves {
		f, r := file+m.Df, rank+m.Dr
		if !onBoard(f, r) {
			continue
		}
		if b.squares[squareOf(file+m.Lf, rank+m.Lr)] != nil {
			continue // 憋马腿
		}
		if to := squareOf(f, r); canLand(b, p.side, to) {
			*out = append(*out, to)
		}
	}
}
