package xiangqi

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game over")
	ErrInvalidFEN  = errors.New("invalid FEN")

	ErrNoPiece       = fmt.Errorf("%w: no piece at source", ErrIllegalMove)
	ErrWrongTurn     = fmt.Errorf("%w: not this side's turn", ErrIllegalMove)
	ErrUnreachable   = fmt.Errorf("%w: destination not reachable", ErrIllegalMove)
	ErrSelfCheck     = fmt.Errorf("%w: leaves own general in check", ErrIllegalMove)
	ErrInvalidSquare = fmt.Errorf("%w: invalid square", ErrIllegalMove)
)
