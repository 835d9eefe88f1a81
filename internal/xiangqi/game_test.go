package xiangqi

import (
	"errors"
	"testing"
)

type snapshot struct {
	fen      string
	key      uint64
	turn     Side
	state    GameState
	pieces   []PieceInfo
	captured []PieceInfo
}

func snap(g *Game) snapshot {
	return snapshot{
		fen:      g.FEN(),
		key:      g.Key(),
		turn:     g.Turn(),
		state:    g.State(),
		pieces:   g.Pieces(),
		captured: g.Captured(),
	}
}

func assertUnchanged(t *testing.T, before snapshot, g *Game) {
	t.Helper()
	after := snap(g)
	if before.fen != after.fen || before.key != after.key || before.turn != after.turn || before.state != after.state {
		t.Fatalf("game changed:\nbefore %s turn=%v state=%v\nafter  %s turn=%v state=%v",
			before.fen, before.turn, before.state, after.fen, after.turn, after.state)
	}
	if len(before.pieces) != len(after.pieces) || len(before.captured) != len(after.captured) {
		t.Fatalf("piece lists changed: live %d -> %d, captured %d -> %d",
			len(before.pieces), len(after.pieces), len(before.captured), len(after.captured))
	}
	for i := range before.pieces {
		if before.pieces[i] != after.pieces[i] {
			t.Fatalf("live piece %d changed: %v -> %v", i, before.pieces[i], after.pieces[i])
		}
	}
	for i := range before.captured {
		if before.captured[i] != after.captured[i] {
			t.Fatalf("captured piece %d changed: %v -> %v", i, before.captured[i], after.captured[i])
		}
	}
}

func TestInitialPosition(t *testing.T) {
	g := NewGame()
	if n := len(g.Pieces()); n != 32 {
		t.Fatalf("initial pieces = %d, want 32", n)
	}
	if g.State() != Unfinished || g.Turn() != Red {
		t.Fatalf("initial state=%v turn=%v", g.State(), g.Turn())
	}
	if got := g.FEN(); got != InitialFEN {
		t.Fatalf("FEN = %q, want %q", got, InitialFEN)
	}
	p, ok := g.PieceAt(sq(t, "e10"))
	if !ok || p.Kind != KindGeneral || p.Side != Black {
		t.Fatalf("e10 = %+v, %v; want black general", p, ok)
	}
	if _, ok := g.PieceAt(sq(t, "e5")); ok {
		t.Fatal("e5 should be empty")
	}
}

func TestSoldierOpeningMoves(t *testing.T) {
	g := NewGame()
	if g.MakeMove("e4", "e6") {
		t.Fatal("two-step soldier move accepted")
	}
	if g.Turn() != Red {
		t.Fatalf("turn after rejected move = %v, want red", g.Turn())
	}
	if !g.MakeMove("e4", "e5") {
		t.Fatal("e4-e5 rejected")
	}
	if g.Turn() != Black {
		t.Fatalf("turn after e4-e5 = %v, want black", g.Turn())
	}
}

func TestRejectedMovesLeaveGameUntouched(t *testing.T) {
	g := NewGame()
	tests := []struct {
		name     string
		from, to string
		err      error
	}{
		{"empty source", "e5", "e6", ErrNoPiece},
		{"wrong color", "e7", "e6", ErrWrongTurn},
		{"unreachable", "b1", "b2", ErrUnreachable},
		{"onto own piece", "a1", "b1", ErrUnreachable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := snap(g)
			err := g.Move(sq(t, tt.from), sq(t, tt.to))
			if !errors.Is(err, tt.err) || !errors.Is(err, ErrIllegalMove) {
				t.Fatalf("Move(%s,%s) err = %v, want %v", tt.from, tt.to, err, tt.err)
			}
			assertUnchanged(t, before, g)
		})
	}

	before := snap(g)
	for _, pair := range [][2]string{{"z1", "e5"}, {"e4", ""}, {"e4", "e11"}} {
		if g.MakeMove(pair[0], pair[1]) {
			t.Fatalf("malformed %v accepted", pair)
		}
	}
	assertUnchanged(t, before, g)
}

func TestSelfCheckRejected(t *testing.T) {
	// 红马挡在将和黑车之间，马的任何一步都会让将暴露
	g := mustGame(t, buildFEN(t, "w", "K:e1", "N:e3", "r:e8", "k:d10"))
	if len(g.Destinations(sq(t, "e3"))) == 0 {
		t.Fatal("horse should have pseudo-legal moves")
	}
	for _, to := range g.Destinations(sq(t, "e3")) {
		before := snap(g)
		err := g.Move(sq(t, "e3"), to)
		if !errors.Is(err, ErrSelfCheck) {
			t.Fatalf("e3-%s err = %v, want ErrSelfCheck", to, err)
		}
		assertUnchanged(t, before, g)
	}
	for _, mv := range g.LegalMoves() {
		if mv.From == sq(t, "e3") {
			t.Fatalf("pinned horse listed as legal: %v", mv)
		}
	}
}

func TestSelfCheckCaptureRollsBack(t *testing.T) {
	// 红车 e2 挡着 e8 的黑车；吃 d2 的卒会让将暴露
	g := mustGame(t, buildFEN(t, "w", "K:e1", "R:e2", "p:d2", "r:e8", "k:d10"))
	before := snap(g)
	if len(before.pieces) != 5 || len(before.captured) != 0 {
		t.Fatalf("setup: live=%d captured=%d", len(before.pieces), len(before.captured))
	}
	err := g.Move(sq(t, "e2"), sq(t, "d2"))
	if !errors.Is(err, ErrSelfCheck) {
		t.Fatalf("e2xd2 err = %v, want ErrSelfCheck", err)
	}
	assertUnchanged(t, before, g)
	if p, ok := g.PieceAt(sq(t, "d2")); !ok || p.Kind != KindSoldier || p.Side != Black {
		t.Fatalf("d2 = %+v, %v; want the black soldier back", p, ok)
	}

	// 回滚后仍能正常走
	if !g.MakeMove("e2", "e8") {
		t.Fatal("rook capture along the file rejected")
	}
	if got := g.Captured(); len(got) != 1 || got[0].Kind != KindChariot {
		t.Fatalf("captured = %+v, want the black chariot", got)
	}
}

func TestPlayReturnsPositionAfterMove(t *testing.T) {
	g := NewGame()
	s, err := g.Play(sq(t, "h3"), sq(t, "e3"))
	if err != nil {
		t.Fatalf("h3-e3: %v", err)
	}
	if s.Ply != 1 || s.Turn != Black || s.FEN != g.FEN() || s.Key != g.Key() {
		t.Fatalf("snapshot = %+v", s)
	}
	if len(s.LegalMoves) != len(g.LegalMoves()) {
		t.Fatalf("snapshot legal moves = %d, want %d", len(s.LegalMoves), len(g.LegalMoves()))
	}
	if _, err := g.Play(sq(t, "e3"), sq(t, "e4")); !errors.Is(err, ErrWrongTurn) {
		t.Fatalf("wrong side err = %v", err)
	}
	if g.Snapshot().Ply != 1 {
		t.Fatal("rejected move counted as a ply")
	}
}

func TestSelfCheckRejectsFacingGenerals(t *testing.T) {
	// 红兵离开 e 列会让两将对脸
	g := mustGame(t, buildFEN(t, "w", "K:e1", "P:e6", "k:e10"))
	before := snap(g)
	if g.MakeMove("e6", "d6") {
		t.Fatal("move that opens the generals' file accepted")
	}
	assertUnchanged(t, before, g)
	if !g.MakeMove("e6", "e7") {
		t.Fatal("soldier advance along the file rejected")
	}
}

func TestCaptureAndTurnAlternation(t *testing.T) {
	g := NewGame()
	moves := [][2]string{
		{"h3", "h10"}, // 炮打马
		{"i10", "h10"}, // 车吃炮
		{"b3", "b10"},  // 炮打马
		{"a10", "b10"}, // 车吃炮
	}
	want := Black
	for i, mv := range moves {
		if !g.MakeMove(mv[0], mv[1]) {
			t.Fatalf("move %d %v rejected", i, mv)
		}
		if g.Turn() != want {
			t.Fatalf("after move %d turn = %v, want %v", i, g.Turn(), want)
		}
		want = want.Opposite()
		if got := len(g.Captured()); got != i+1 {
			t.Fatalf("after move %d captured = %d, want %d", i, got, i+1)
		}
	}
	if n := len(g.Pieces()); n != 28 {
		t.Fatalf("live pieces = %d, want 28", n)
	}
	if g.Key() != positionKey(g.board.CalculateHash(), g.Turn()) {
		t.Fatal("incremental hash drifted")
	}
}

func TestCheckmateEndsGame(t *testing.T) {
	// 双车：a9 封第 9 行，b1 车沉底将军
	g := mustGame(t, buildFEN(t, "w", "K:d1", "R:a9", "R:b1", "k:e10"))
	if g.State() != Unfinished {
		t.Fatalf("state before mate = %v", g.State())
	}
	if !g.MakeMove("b1", "b10") {
		t.Fatal("mating move rejected")
	}
	if g.State() != RedWon {
		t.Fatalf("state = %v, want RedWon", g.State())
	}
	if len(g.LegalMoves()) != 0 {
		t.Fatal("finished game still lists legal moves")
	}

	before := snap(g)
	if err := g.Move(sq(t, "e10"), sq(t, "d10")); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after mate err = %v, want ErrGameOver", err)
	}
	if g.MakeMove("a9", "a8") {
		t.Fatal("move accepted after the game ended")
	}
	assertUnchanged(t, before, g)
}

func TestBlackMatesRed(t *testing.T) {
	g := mustGame(t, buildFEN(t, "b", "K:e1", "k:f10", "r:a2", "r:b10"))
	if !g.MakeMove("b10", "b1") {
		t.Fatal("mating move rejected")
	}
	if g.State() != BlackWon {
		t.Fatalf("state = %v, want BlackWon", g.State())
	}
}

func TestNoLegalMoveWithoutCheckIsLoss(t *testing.T) {
	// 黑将 e10 没被将军，但 d10/f10/e9 都被控制
	fen := buildFEN(t, "b", "K:f1", "R:a9", "R:d3", "R:f3", "k:e10")
	g := mustGame(t, fen)
	if g.IsInCheck(Black) {
		t.Fatal("black should not be in check")
	}
	if g.State() != RedWon {
		t.Fatalf("state = %v, want RedWon", g.State())
	}
}

func TestNewGameFromFENRejectsBadInput(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/RNBAKABNR w",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABN w",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNRR w",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAXABNR w",
		"rnba1abnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR x",
		// 黑走，但红将已被 e5 黑车将军
		buildFEN(t, "b", "K:e1", "R:a1", "r:e5", "k:d10"),
		// 红走，两将对脸
		buildFEN(t, "w", "K:e1", "k:e10"),
	} {
		if _, err := NewGameFromFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("NewGameFromFEN(%q) err = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	g := NewGame()
	for _, mv := range [][2]string{{"h3", "e3"}, {"h10", "g8"}, {"h1", "g3"}} {
		if !g.MakeMove(mv[0], mv[1]) {
			t.Fatalf("move %v rejected", mv)
		}
	}
	fen := g.FEN()
	g2 := mustGame(t, fen)
	if g2.FEN() != fen || g2.Key() != g.Key() || g2.Turn() != Black {
		t.Fatalf("round trip mismatch: %q vs %q", g2.FEN(), fen)
	}
}
