package xiangqi

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (g *Game) Perft(depth int) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return perft(&g.board, g.turn, depth)
}

func perft(b *Board, side Side, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, mv := range pseudoMovesForSide(b, side) {
		u := b.apply(mv.From, mv.To)
		if !IsInCheck(b, side) {
			nodes += perft(b, side.Opposite(), depth-1)
		}
		b.revert(u)
	}
	return nodes
}
