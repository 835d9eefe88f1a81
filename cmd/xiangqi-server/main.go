package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"xiangqi/internal/config"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
	"xiangqi/internal/server/ws"
)

func main() {
	cfg := config.Load()
	addr := flag.String("addr", cfg.HTTPAddr, "listen address")
	webDir := flag.String("web", cfg.WebDir, "directory with static front-end files (optional)")
	flag.Parse()

	gin.SetMode(cfg.GinMode)

	h := httpserver.NewHandler(game.NewManager(), ws.NewHub(cfg.WSAllowAnyHost))
	r := httpserver.NewRouter(h, *webDir)

	if *webDir != "" {
		log.Printf("listening on %s, serving static from %s", *addr, *webDir)
	} else {
		log.Printf("listening on %s", *addr)
	}
	if err := r.Run(*addr); err != nil {
		log.Fatal(err)
	}
}
