// Command server serves the intercountry adoption statistics API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and
// environment variables; DATABASE_URL is required.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/adoption-stats/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := app.Run(ctx)
	stop()
	if err != nil {
		log.Fatalf("server: %v", err)
	}
}
