package xiangqi

import "testing"

func TestPerftInitialPosition(t *testing.T) {
	g := NewGame()
	want := []uint64{1, 44, 1920}
	for depth, n := range want {
		if got := g.Perft(depth); got != n {
			t.Errorf("perft(%d) = %d, want %d", depth, got, n)
		}
	}
	if got := len(g.LegalMoves()); got != 44 {
		t.Errorf("legal moves = %d, want 44", got)
	}
	if g.FEN() != InitialFEN {
		t.Fatal("perft left the board modified")
	}
}
