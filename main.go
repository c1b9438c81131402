package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"RacketHearts/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	addr := flag.String("addr", cfg.Addr, "address to listen on (e.g., 127.0.0.1:8080)")
	dbPath := flag.String("db", cfg.DBPath, "path to the save database")
	tuningPath := flag.String("tuning", cfg.TuningPath, "path to tuning JSON")
	flag.Parse()

	cfg.Addr = *addr
	cfg.DBPath = *dbPath
	cfg.TuningPath = *tuningPath

	if err := server.StartApp(cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
