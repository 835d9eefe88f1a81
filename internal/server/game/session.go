package game

import (
	"sync"
	"time"

	"xiangqi/internal/xiangqi"
)

type Session struct {
	playMu sync.Mutex // 串行化 Play 和它的通知，推送顺序与走子顺序一致

	ID        string
	Game      *xiangqi.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}
