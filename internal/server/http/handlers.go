package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"xiangqi/internal/server/game"
	"xiangqi/internal/server/ws"
	"xiangqi/internal/xiangqi"
)

// Handler 把 /api/* 请求翻译成引擎调用
type Handler struct {
	games *game.Manager
	hub   *ws.Hub
}

func NewHandler(games *game.Manager, hub *ws.Hub) *Handler {
	return &Handler{games: games, hub: hub}
}

func (h *Handler) handleNewGame(c *gin.Context) {
	var req NewGameRequest
	// 空 body 也算合法：标准开局
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad json"})
			return
		}
	}

	var s *game.Session
	if req.FEN == "" {
		s = h.games.NewGame()
	} else {
		var err error
		if s, err = h.games.NewGameFromFEN(req.FEN); err != nil {
			writeError(c, err)
			return
		}
	}
	log.Printf("new game %s", s.ID)
	c.JSON(http.StatusOK, stateResponse(s.ID, s.Game))
}

func (h *Handler) handlePlay(c *gin.Context) {
	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad json"})
		return
	}

	var resp StateResponse
	_, _, err := h.games.Play(req.GameID, req.From, req.To, func(s *game.Session, snap xiangqi.Snapshot) {
		resp = snapshotResponse(s.ID, snap)
		h.hub.Broadcast(s.ID, "move", resp)
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleState(c *gin.Context) {
	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad json"})
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(s.ID, s.Game))
}

func (h *Handler) handleWS(c *gin.Context) {
	s, err := h.games.Get(c.Query("game_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	hello := func() interface{} { return stateResponse(s.ID, s.Game) }
	if err := h.hub.Serve(c.Writer, c.Request, s.ID, hello); err != nil {
		log.Printf("ws %s: %v", s.ID, err)
	}
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, xiangqi.ErrGameOver):
		status = http.StatusConflict
	case errors.Is(err, xiangqi.ErrIllegalMove), errors.Is(err, xiangqi.ErrInvalidFEN):
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
