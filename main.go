package main

import (
	"github.com/klokku/productivity/internal/app"
	log "github.com/sirupsen/logrus"
)

func init() {
	if err := app.SetupLogLevel(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}
