package main

import (
	"flag"
	"fmt"
	"log"

	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", xiangqi.InitialFEN, "position to inspect")
	depth := flag.Int("depth", 3, "perft depth")
	flag.Parse()

	g, err := xiangqi.NewGameFromFEN(*fen)
	if err != nil {
		log.Fatalf("load position: %v", err)
	}
	fmt.Println("FEN:", g.FEN())
	fmt.Printf("Key: %016x\n", g.Key())
	fmt.Println("State:", g.State(), "Turn:", g.Turn(), "InCheck:", g.IsInCheck(g.Turn()))

	pseudo := 0
	for _, p := range g.Pieces() {
		if p.Side == g.Turn() {
			pseudo += len(g.Destinations(p.Square))
		}
	}
	fmt.Println("Pseudo legal moves:", pseudo)
	fmt.Println("Legal moves:", len(g.LegalMoves()))
	for d := 1; d <= *depth; d++ {
		fmt.Printf("perft(%d) = %d\n", d, g.Perft(d))
	}
}
