package xiangqi

// IsInCheck 判断 side 这一方的将是否被将军：
// 对方任何一个子的伪合法落点包含我方将的位置，或者两将同列且中间无子（对脸）。
// 对脸对双方都算将军。
func IsInCheck(b *Board, side Side) bool {
	g := b.general(side)
	if g == nil {
		return false
	}
	for _, p := range b.live {
		if p.side == side {
			continue
		}
		if canReach(b, p, g.sq) {
			return true
		}
	}
	return generalsFace(b)
}

func generalsFace(b *Board) bool {
	red, black := b.general(Red), b.general(Black)
	if red == nil || black == nil {
		return false
	}
	file := red.sq.File()
	if file != black.sq.File() {
		return false
	}

	lo, hi := red.sq.Rank(), black.sq.Rank()
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if b.squares[squareOf(file, r)] != nil {
			return false // 中间有子
		}
	}
	return true
}
