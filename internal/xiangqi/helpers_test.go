package xiangqi

import (
	"strings"
	"testing"
)

// buildFEN 由 "K:e1" 这样的摆子列表拼出 FEN，大写红、小写黑
func buildFEN(t *testing.T, turn string, placements ...string) string {
	t.Helper()
	var grid [Ranks][Files]rune
	for _, pl := range placements {
		parts := strings.SplitN(pl, ":", 2)
		if len(parts) != 2 || len(parts[0]) != 1 {
			t.Fatalf("bad placement %q", pl)
		}
		sq, err := ParseSquare(parts[1])
		if err != nil {
			t.Fatalf("bad placement %q: %v", pl, err)
		}
		grid[sq.Rank()-1][sq.File()-1] = rune(parts[0][0])
	}

	var sb strings.Builder
	for rank := Ranks; rank >= 1; rank-- {
		if rank < Ranks {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 1; file <= Files; file++ {
			ch := grid[rank-1][file-1]
			if ch == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String() + " " + turn
}

func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return g
}

// mustBoard 只解码，不做开局合法性检查，用来直接测将军判定
func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, _, err := decodeFEN(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return b
}

func sq(t *testing.T, s string) Square {
	t.Helper()
	v, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

// destsOf 返回 from 上棋子的落点集合（坐标字符串）
func destsOf(t *testing.T, g *Game, from string) map[string]bool {
	t.Helper()
	out := make(map[string]bool)
	for _, to := range g.Destinations(sq(t, from)) {
		out[to.String()] = true
	}
	return out
}

func assertDests(t *testing.T, g *Game, from string, want ...string) {
	t.Helper()
	got := destsOf(t, g, from)
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", from, keys(got), want)
	}
	for _, w := range want {
		if !got[w] {
			t.Fatalf("%s: got %v, want %v", from, keys(got), want)
		}
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
