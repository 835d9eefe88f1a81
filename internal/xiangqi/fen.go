package xiangqi

import (
	"fmt"
	"strings"
	"unicode"
)

// 标准开局，红先
const InitialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

var letterToKind = map[rune]PieceKind{
	'k': KindGeneral,
	'a': KindAdvisor,
	'b': KindElephant,
	'e': KindElephant, // 部分软件用 e
	'n': KindHorse,
	'h': KindHorse, // 部分软件用 h
	'r': KindChariot,
	'c': KindCannon,
	'p': KindSoldier,
}

var kindToLetter = [...]rune{
	KindGeneral:  'k',
	KindAdvisor:  'a',
	KindElephant: 'b',
	KindHorse:    'n',
	KindChariot:  'r',
	KindCannon:   'c',
	KindSoldier:  'p',
}

func pieceToChar(p *Piece) rune {
	if p == nil || p.kind <= KindNone || int(p.kind) >= len(kindToLetter) {
		return '.'
	}
	ch := kindToLetter[p.kind]
	if p.side == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

// 10 行用 “/” 隔开（从第 10 行到第 1 行），空位用数字压缩；空格后 w/b 表示走子方
func encodeFEN(b *Board, turn Side) string {
	var sb strings.Builder
	for rank := Ranks; rank >= 1; rank-- {
		if rank < Ranks {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 1; file <= Files; file++ {
			p := b.squares[squareOf(file, rank)]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if turn == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

func decodeFEN(fen string) (*Board, Side, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, NoSide, fmt.Errorf("%w: missing side to move", ErrInvalidFEN)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return nil, NoSide, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidFEN, Ranks, len(rows))
	}

	b := &Board{}
	generals := [2]int{}
	for i, row := range rows {
		rank := Ranks - i
		file := 1
		for _, ch := range row {
			if file > Files {
				return nil, NoSide, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, rank)
			}
			if ch >= '1' && ch <= '9' {
				file += int(ch - '0')
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, NoSide, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			if kind == KindGeneral {
				generals[side]++
			}
			b.place(newPiece(side, kind, squareOf(file, rank)))
			file++
		}
		if file != Files+1 {
			return nil, NoSide, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank, file-1)
		}
	}
	if generals[Red] != 1 || generals[Black] != 1 {
		return nil, NoSide, fmt.Errorf("%w: need exactly one general per side", ErrInvalidFEN)
	}

	var turn Side
	switch parts[1] {
	case "w", "r":
		turn = Red
	case "b":
		turn = Black
	default:
		return nil, NoSide, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, parts[1])
	}
	return b, turn, nil
}
