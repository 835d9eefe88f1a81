package xiangqi

import (
	"fmt"
	"sync"
)

// Game 持有权威棋盘。所有方法都在同一把锁内完成，
// 外部永远看不到试走中的棋盘。
type Game struct {
	mu    sync.Mutex
	board Board
	turn  Side
	state GameState
	ply   int // 已提交的步数
}

// PieceInfo is a read-only snapshot of a live piece.
type PieceInfo struct {
	Kind   PieceKind
	Side   Side
	Square Square
}

func (p *Piece) Info() PieceInfo {
	return PieceInfo{Kind: p.kind, Side: p.side, Square: p.sq}
}

// NewGame returns a game at the standard starting position, red to move.
func NewGame() *Game {
	g, err := NewGameFromFEN(InitialFEN)
	if err != nil {
		panic("initial FEN: " + err.Error())
	}
	return g
}

// NewGameFromFEN loads a position. If the side to move already has no legal
// response the game starts out finished.
func NewGameFromFEN(fen string) (*Game, error) {
	b, turn, err := decodeFEN(fen)
	if err != nil {
		return nil, err
	}
	// 不走棋的一方已被将军：轮到的一方可以直接吃将，这种局面不可能出现
	if IsInCheck(b, turn.Opposite()) {
		return nil, fmt.Errorf("%w: %s is in check but not to move", ErrInvalidFEN, turn.Opposite())
	}
	g := &Game{board: *b, turn: turn}
	if !g.hasLegalResponse(turn) {
		g.state = wonBy(turn.Opposite())
	}
	return g, nil
}

func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Game) Turn() Side {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

func (g *Game) PieceAt(sq Square) (PieceInfo, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := g.board.PieceAt(sq)
	if p == nil {
		return PieceInfo{}, false
	}
	return p.Info(), true
}

func (g *Game) Pieces() []PieceInfo {
	g.mu.Lock()
	defer g.mu.Unlock()
	return infos(g.board.live)
}

func (g *Game) Captured() []PieceInfo {
	g.mu.Lock()
	defer g.mu.Unlock()
	return infos(g.board.captured)
}

func infos(ps []*Piece) []PieceInfo {
	out := make([]PieceInfo, len(ps))
	for i, p := range ps {
		out[i] = p.Info()
	}
	return out
}

func (g *Game) IsInCheck(side Side) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return IsInCheck(&g.board, side)
}

// Destinations returns the pseudo-legal destinations of the piece on sq.
func (g *Game) Destinations(sq Square) []Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Destinations(&g.board, g.board.PieceAt(sq))
}

// Key 是局面哈希（棋盘 + 走子方）
func (g *Game) Key() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return positionKey(g.board.hash, g.turn)
}

func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return encodeFEN(&g.board, g.turn)
}

// LegalMoves 生成当前走子方的所有合法走法；终局后为空。
func (g *Game) LegalMoves() []Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.legalMoves()
}

func (g *Game) legalMoves() []Move {
	if g.state != Unfinished {
		return nil
	}
	var out []Move
	for _, mv := range pseudoMovesForSide(&g.board, g.turn) {
		if g.legal(mv.From, mv.To) {
			out = append(out, mv)
		}
	}
	return out
}

// Snapshot is everything a front end needs to draw the position, read under one lock.
type Snapshot struct {
	Ply        int
	Key        uint64
	FEN        string
	Turn       Side
	State      GameState
	InCheck    bool
	Pieces     []PieceInfo
	Captured   []PieceInfo
	LegalMoves []Move
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	return Snapshot{
		Ply:        g.ply,
		Key:        positionKey(g.board.hash, g.turn),
		FEN:        encodeFEN(&g.board, g.turn),
		Turn:       g.turn,
		State:      g.state,
		InCheck:    IsInCheck(&g.board, g.turn),
		Pieces:     infos(g.board.live),
		Captured:   infos(g.board.captured),
		LegalMoves: g.legalMoves(),
	}
}

// MakeMove takes coordinates like "e4" and reports whether the move was made.
func (g *Game) MakeMove(from, to string) bool {
	f, err := ParseSquare(from)
	if err != nil {
		return false
	}
	t, err := ParseSquare(to)
	if err != nil {
		return false
	}
	return g.Move(f, t) == nil
}

// Move validates and commits a move. Every rejection leaves the board,
// the captured pieces and the turn untouched.
func (g *Game) Move(from, to Square) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.move(from, to)
}

// Play is Move plus the resulting position, taken in the same critical
// section so no other move can slip in between.
func (g *Game) Play(from, to Square) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.move(from, to); err != nil {
		return Snapshot{}, err
	}
	return g.snapshot(), nil
}

func (g *Game) move(from, to Square) error {
	if g.state != Unfinished {
		return ErrGameOver
	}
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %s-%s", ErrInvalidSquare, from, to)
	}
	pc := g.board.PieceAt(from)
	if pc == nil {
		return fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if pc.side != g.turn {
		return fmt.Errorf("%w: %s", ErrWrongTurn, pc)
	}
	if !canReach(&g.board, pc, to) {
		return fmt.Errorf("%w: %s to %s", ErrUnreachable, pc, to)
	}

	u := g.board.apply(from, to)
	if IsInCheck(&g.board, g.turn) {
		g.board.revert(u)
		return fmt.Errorf("%w: %s to %s", ErrSelfCheck, pc, to)
	}

	g.ply++
	g.turn = g.turn.Opposite()
	if !g.hasLegalResponse(g.turn) {
		g.state = wonBy(g.turn.Opposite())
	}
	return nil
}

// legal 试走 from->to，检查是否送将，然后回滚
func (g *Game) legal(from, to Square) bool {
	side := g.board.squares[from].side
	u := g.board.apply(from, to)
	ok := !IsInCheck(&g.board, side)
	g.board.revert(u)
	return ok
}

// hasLegalResponse 穷举 side 的每个子、每个伪合法落点，只要有一步不送将就返回 true。
// 没有合法应着就是输，象棋没有“无子可动”的和棋。
func (g *Game) hasLegalResponse(side Side) bool {
	for _, p := range g.board.PiecesOf(side) {
		for _, to := range Destinations(&g.board, p) {
			if g.legal(p.sq, to) {
				return true
			}
		}
	}
	return false
}
