package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

type PieceKind int8

const (
	KindNone     PieceKind = iota
	KindGeneral            // 帅 / 将
	KindAdvisor            // 仕 / 士
	KindElephant           // 相 / 象
	KindHorse              // 马
	KindChariot            // 车
	KindCannon             // 炮
	KindSoldier            // 兵 / 卒
)

var kindNames = [...]string{
	KindNone:     "none",
	KindGeneral:  "general",
	KindAdvisor:  "advisor",
	KindElephant: "elephant",
	KindHorse:    "horse",
	KindChariot:  "chariot",
	KindCannon:   "cannon",
	KindSoldier:  "soldier",
}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "none"
	}
	return kindNames[k]
}

// Piece is a handle: two pieces are the same piece only if the pointers match.
// Only the Board moves a piece.
type Piece struct {
	kind PieceKind
	side Side
	sq   Square
}

func newPiece(side Side, kind PieceKind, sq Square) *Piece {
	return &Piece{kind: kind, side: side, sq: sq}
}

func (p *Piece) Kind() PieceKind { return p.kind }
func (p *Piece) Side() Side      { return p.side }
func (p *Piece) Square() Square  { return p.sq }

func (p *Piece) String() string {
	return p.side.String() + " " + p.kind.String() + "@" + p.sq.String()
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

type GameState int8

const (
	Unfinished GameState = iota
	RedWon
	BlackWon
)

func (s GameState) String() string {
	switch s {
	case RedWon:
		return "RED_WON"
	case BlackWon:
		return "BLACK_WON"
	}
	return "UNFINISHED"
}

// wonBy 返回 side 获胜时的终局状态
func wonBy(side Side) GameState {
	if side == Red {
		return RedWon
	}
	return BlackWon
}
