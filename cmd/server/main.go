// Command server runs the background job orchestrator (waiting-period
// recalculation, reminders, summary regeneration, metric cleanup) together
// with the operational HTTP endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/zakat-tracker/internal/app"
	"github.com/heartmarshall/zakat-tracker/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv(config.PathEnv), "path to the YAML config file")
	envHelp := flag.Bool("env-help", false, "list supported environment variables and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	switch {
	case *version:
		fmt.Println(app.BuildVersion())
		return
	case *envHelp:
		help, err := config.EnvHelp()
		if err != nil {
			log.Fatalf("server: %v", err)
		}
		fmt.Println(help)
		return
	}

	if err := app.Run(context.Background(), *configPath); err != nil {
		log.Fatalf("server: %v", err)
	}
}
