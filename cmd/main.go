package main

import (
	"os"

	"clinic-data-store/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	command := "migrate"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	switch command {
	case "migrate":
		err = app.Migrate()
	case "rollback":
		err = app.Rollback()
	case "seed":
		err = app.Seed()
	case "status":
		err = app.Status()
	default:
		logrus.Fatalf("Unknown command %q (expected migrate, rollback, seed or status)", command)
	}

	if err != nil {
		logrus.Fatalf("Command %s failed: %v", command, err)
	}
}
