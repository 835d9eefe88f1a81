package xiangqi

// Destinations 生成单个棋子的伪合法落点（不考虑自己是否被将军）。
func Destinations(b *Board, p *Piece) []Square {
	var out []Square
	if p == nil {
		return out
	}
	switch p.kind {
	case KindGeneral:
		genGeneralMoves(b, p, &out)
	case KindAdvisor:
		genAdvisorMoves(b, p, &out)
	case KindElephant:
		genElephantMoves(b, p, &out)
	case KindHorse:
		genHorseMoves(b, p, &out)
	case KindChariot:
		genChariotMoves(b, p, &out)
	case KindCannon:
		genCannonMoves(b, p, &out)
	case KindSoldier:
		genSoldierMoves(b, p, &out)
	}
	return out
}

// 生成指定一方的伪合法走法
func pseudoMovesForSide(b *Board, side Side) []Move {
	var moves []Move
	for _, p := range b.PiecesOf(side) {
		for _, to := range Destinations(b, p) {
			moves = append(moves, Move{From: p.sq, To: to})
		}
	}
	return moves
}

func canReach(b *Board, p *Piece, to Square) bool {
	for _, sq := range Destinations(b, p) {
		if sq == to {
			return true
		}
	}
	return false
}
