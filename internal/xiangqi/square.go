package xiangqi

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	Files      = 9
	Ranks      = 10
	NumSquares = Files * Ranks

	// 红方半场 1..5，黑方半场 6..10
	RiverRank = 5
)

// Square 是 0-based 索引：(rank-1)*Files + (file-1)
type Square int8

const NoSquare Square = -1

func squareOf(file, rank int) Square { return Square((rank-1)*Files + (file - 1)) }

func onBoard(file, rank int) bool {
	return file >= 1 && file <= Files && rank >= 1 && rank <= Ranks
}

// File returns 1..9 (a..i).
func (s Square) File() int { return int(s)%Files + 1 }

// Rank returns 1..10.
func (s Square) Rank() int { return int(s)/Files + 1 }

func (s Square) Valid() bool { return s >= 0 && int(s) < NumSquares }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.File()-1)) + strconv.Itoa(s.Rank())
}

// ParseSquare parses coordinates like "e4" or "a10".
func ParseSquare(text string) (Square, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	if len(t) < 2 || len(t) > 3 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	file := int(t[0]-'a') + 1
	rank, err := strconv.Atoi(t[1:])
	if err != nil || t[1] < '1' || t[1] > '9' || !onBoard(file, rank) {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return squareOf(file, rank), nil
}

// 兵的前进方向：红向上(+1)，黑向下(-1)
func forward(side Side) int {
	switch side {
	case Red:
		return +1
	case Black:
		return -1
	}
	return 0
}

// 是否在本方半场（没过河）
func ownHalf(side Side, rank int) bool {
	if side == Red {
		return rank <= RiverRank
	}
	return rank > RiverRank
}

// 是否在九宫：d..f 列，红 1..3，黑 8..10
func inPalace(side Side, file, rank int) bool {
	if file < 4 || file > 6 {
		return false
	}
	if side == Red {
		return rank >= 1 && rank <= 3
	}
	if side == Black {
		return rank >= Ranks-2 && rank <= Ranks
	}
	return false
}
