package main

import (
	"log"
	"os"

	"github.com/pathakanu/studyPlanner/internal/commands"
)

func main() {
	logger := log.New(os.Stderr, "[studyPlanner] ", log.LstdFlags|log.Lshortfile)
	if err := commands.New(logger).Execute(); err != nil {
		logger.Fatalf("error during command execution: %v", err)
	}
}
