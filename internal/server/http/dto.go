package httpserver

import (
	"strconv"

	"xiangqi/internal/xiangqi"
)

// 前端用的招法结构，坐标用 "e4" 这种字符串
type MoveDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type PieceDTO struct {
	Kind   string `json:"kind"`
	Side   string `json:"side"`
	Square string `json:"square"`
}

// NewGameRequest 可选传入 FEN，空则用标准开局
type NewGameRequest struct {
	FEN string `json:"fen"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// StateResponse 是 new_game / play / state 以及 websocket 推送的统一返回
type StateResponse struct {
	GameID     string     `json:"game_id"`
	Ply        int        `json:"ply"`
	Key        string     `json:"key"` // 局面哈希，十六进制
	FEN        string     `json:"fen"`
	Turn       string     `json:"turn"`
	State      string     `json:"state"` // UNFINISHED / RED_WON / BLACK_WON
	InCheck    bool       `json:"in_check"`
	Pieces     []PieceDTO `json:"pieces"`
	Captured   []PieceDTO `json:"captured"`
	LegalMoves []MoveDTO  `json:"legal_moves"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{From: m.From.String(), To: m.To.String()}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func piecesToDTO(ps []xiangqi.PieceInfo) []PieceDTO {
	out := make([]PieceDTO, len(ps))
	for i, p := range ps {
		out[i] = PieceDTO{Kind: p.Kind.String(), Side: p.Side.String(), Square: p.Square.String()}
	}
	return out
}

func stateResponse(id string, g *xiangqi.Game) StateResponse {
	return snapshotResponse(id, g.Snapshot())
}

func snapshotResponse(id string, snap xiangqi.Snapshot) StateResponse {
	return StateResponse{
		GameID:     id,
		Ply:        snap.Ply,
		Key:        strconv.FormatUint(snap.Key, 16),
		FEN:        snap.FEN,
		Turn:       snap.Turn.String(),
		State:      snap.State.String(),
		InCheck:    snap.InCheck,
		Pieces:     piecesToDTO(snap.Pieces),
		Captured:   piecesToDTO(snap.Captured),
		LegalMoves: movesToDTO(snap.LegalMoves),
	}
}
