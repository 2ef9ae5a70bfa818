package main

import (
	"fmt"
	"log"

	"barge-tracker/internal/api"
	"barge-tracker/internal/config"
	"barge-tracker/internal/server"
)

func main() {
	cfg := config.Load()
	client := api.New(cfg.APIBaseURL)

	r := server.NewRouter(cfg, client)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
