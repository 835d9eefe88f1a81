package xiangqi

import "sync"

const zobristKinds = 8 // PieceKind 范围 [1..7]，0 保留不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][NumSquares]uint64
	zobristSide   uint64
)

// splitMix 是 splitmix64 序列，保证每次运行的键都一样
type splitMix uint64

func (s *splitMix) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func initZobrist() {
	zobristOnce.Do(func() {
		rng := splitMix(0x5851F42D4C957F2D)
		for _, side := range [...]Side{Red, Black} {
			for kind := KindGeneral; kind <= KindSoldier; kind++ {
				for sq := Square(0); int(sq) < NumSquares; sq++ {
					zobristPieces[side][kind][sq] = rng.next()
				}
			}
		}
		zobristSide = rng.next()
	})
}

func pieceHashKey(p *Piece, sq Square) uint64 {
	if p == nil || !sq.Valid() {
		return 0
	}
	initZobrist()

	if p.side != Red && p.side != Black {
		return 0
	}
	if p.kind <= KindNone || int(p.kind) >= zobristKinds {
		return 0
	}
	return zobristPieces[p.side][p.kind][sq]
}

// CalculateHash 全量计算棋盘的 Zobrist 哈希（不含走子方）。
func (b *Board) CalculateHash() uint64 {
	var h uint64
	for _, p := range b.live {
		h ^= pieceHashKey(p, p.sq)
	}
	return h
}

// positionKey 把走子方混进棋盘哈希
func positionKey(boardHash uint64, turn Side) uint64 {
	initZobrist()
	if turn == Black {
		return boardHash ^ zobristSide
	}
	return boardHash
}
