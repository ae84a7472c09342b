package main

import (
	"log"

	"github.com/MrSnakeDoc/bookmarks/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ bookmarks failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ bookmarks failed: %v", err)
	}
}
