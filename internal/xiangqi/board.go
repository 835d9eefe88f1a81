package xiangqi

// Board 只存子力位置，不懂规则；单格单子由调用方保证。
type Board struct {
	squares  [NumSquares]*Piece
	live     []*Piece
	captured []*Piece
	hash     uint64
}

// 模拟走子的回滚记录
type undo struct {
	piece    *Piece
	from     Square
	captured *Piece
	capIdx   int // 被吃子在 live 中的原下标
}

func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq]
}

// Pieces returns the live pieces in placement order.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, len(b.live))
	copy(out, b.live)
	return out
}

func (b *Board) PiecesOf(side Side) []*Piece {
	var out []*Piece
	for _, p := range b.live {
		if p.side == side {
			out = append(out, p)
		}
	}
	return out
}

func (b *Board) Captured() []*Piece {
	out := make([]*Piece, len(b.captured))
	copy(out, b.captured)
	return out
}

func (b *Board) Hash() uint64 { return b.hash }

func (b *Board) general(side Side) *Piece {
	for _, p := range b.live {
		if p.kind == KindGeneral && p.side == side {
			return p
		}
	}
	return nil
}

// place 摆子，只在开局/FEN 解码时用
func (b *Board) place(p *Piece) {
	b.squares[p.sq] = p
	b.live = append(b.live, p)
	b.hash ^= pieceHashKey(p, p.sq)
}

// setLocation 是唯一改变棋子坐标的途径
func (b *Board) setLocation(p *Piece, to Square) {
	if b.squares[p.sq] == p {
		b.squares[p.sq] = nil
	}
	b.hash ^= pieceHashKey(p, p.sq)
	p.sq = to
	b.squares[to] = p
	b.hash ^= pieceHashKey(p, to)
}

// remove 把棋子从盘上移到被吃列表，返回它在 live 中的下标
func (b *Board) remove(p *Piece) int {
	idx := -1
	for i, q := range b.live {
		if q == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return -1
	}
	b.live = append(b.live[:idx], b.live[idx+1:]...)
	b.captured = append(b.captured, p)
	if b.squares[p.sq] == p {
		b.squares[p.sq] = nil
	}
	b.hash ^= pieceHashKey(p, p.sq)
	return idx
}

// restore 撤销 remove，棋子回到 live 的原下标
func (b *Board) restore(p *Piece, idx int) {
	for i := len(b.captured) - 1; i >= 0; i-- {
		if b.captured[i] == p {
			b.captured = append(b.captured[:i], b.captured[i+1:]...)
			break
		}
	}
	if idx < 0 || idx > len(b.live) {
		idx = len(b.live)
	}
	b.live = append(b.live, nil)
	copy(b.live[idx+1:], b.live[idx:])
	b.live[idx] = p
	b.squares[p.sq] = p
	b.hash ^= pieceHashKey(p, p.sq)
}

// apply 试走一步（吃掉 to 上的子），返回回滚记录
func (b *Board) apply(from, to Square) undo {
	pc := b.squares[from]
	u := undo{piece: pc, from: from, capIdx: -1}
	if victim := b.squares[to]; victim != nil {
		u.captured = victim
		u.capIdx = b.remove(victim)
	}
	b.setLocation(pc, to)
	return u
}

func (b *Board) revert(u undo) {
	b.setLocation(u.piece, u.from)
	if u.captured != nil {
		b.restore(u.captured, u.capIdx)
	}
}
