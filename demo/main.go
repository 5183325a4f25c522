package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"newsdesk/demo/client"
	"newsdesk/demo/tui"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	baseURL := client.GetEnvOrDefault("NEWS_API_URL", "http://localhost:8080")
	token := os.Getenv("NEWS_TOKEN")

	c := client.NewClient(baseURL, token)
	m := tui.NewModel(c, token != "")

	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
