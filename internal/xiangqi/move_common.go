package xiangqi

// {dFile, dRank}
var (
	orthoDirs    = [4][2]int{{0, +1}, {0, -1}, {+1, 0}, {-1, 0}}
	diagonalDirs = [4][2]int{{+1, +1}, {-1, +1}, {+1, -1}, {-1, -1}}
)

// 落点为空或是敌子
func canLand(b *Board, side Side, sq Square) bool {
	dst := b.squares[sq]
	return dst == nil || dst.side != side
}

// 车：横竖随便走，遇子为止，敌子可吃
func genChariotMoves(b *Board, p *Piece, out *[]Square) {
	file, rank := p.sq.File(), p.sq.Rank()
	for _, d := range orthoDirs {
		f, r := file+d[0], rank+d[1]
		for onBoard(f, r) {
			to := squareOf(f, r)
			dst := b.squares[to]
			if dst == nil {
				*out = append(*out, to)
			} else {
				if dst.side != p.side {
					*out = append(*out, to)
				}
				break
			}
			f += d[0]
			r += d[1]
		}
	}
}

// 炮：车走法 + 隔一子吃
func genCannonMoves(b *Board, p *Piece, out *[]Square) {
	file, rank := p.sq.File(), p.sq.Rank()
	for _, d := range orthoDirs {
		f, r := file+d[0], rank+d[1]

		// 走子阶段：直到炮架
		for onBoard(f, r) {
			to := squareOf(f, r)
			f += d[0]
			r += d[1]
			if b.squares[to] != nil {
				break
			}
			*out = append(*out, to)
		}

		// 吃子阶段：越过炮架后的第一子，敌子可吃
		for onBoard(f, r) {
			to := squareOf(f, r)
			if dst := b.squares[to]; dst != nil {
				if dst.side != p.side {
					*out = append(*out, to)
				}
				break
			}
			f += d[0]
			r += d[1]
		}
	}
}

// 相：田字，塞象眼不能走，不过河
func genElephantMoves(b *Board, p *Piece, out *[]Square) {
	file, rank := p.sq.File(), p.sq.Rank()
	for _, d := range diagonalDirs {
		f, r := file+2*d[0], rank+2*d[1]
		if !onBoard(f, r) || !ownHalf(p.side, r) {
			continue
		}
		if b.squares[squareOf(file+d[0], rank+d[1])] != nil {
			continue
		}
		if to := squareOf(f, r); canLand(b, p.side, to) {
			*out = append(*out, to)
		}
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(b *Board, p *Piece, out *[]Square) {
	genPalaceSteps(b, p, diagonalDirs, out)
}

// 将：九宫内上下左右一格（对脸在 check.go 里处理）
func genGeneralMoves(b *Board, p *Piece, out *[]Square) {
	genPalaceSteps(b, p, orthoDirs, out)
}

func genPalaceSteps(b *Board, p *Piece, dirs [4][2]int, out *[]Square) {
	file, rank := p.sq.File(), p.sq.Rank()
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		if !inPalace(p.side, f, r) {
			continue
		}
		if to := squareOf(f, r); canLand(b, p.side, to) {
			*out = append(*out, to)
		}
	}
}
