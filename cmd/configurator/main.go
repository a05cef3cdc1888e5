package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"tile-configurator/internal/app"
	"tile-configurator/internal/config"
	"tile-configurator/internal/graphics"
	"tile-configurator/internal/logger"
)

func init() {
	// raylib must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "preferences file")
	envPath := flag.String("env", ".env", "dotenv file with CONFIGURATOR_* overrides")
	locale := flag.String("locale", "", "UI language (es, en); overrides config and env")
	flag.Parse()

	prefs, created, err := config.LoadOrCreate(*configPath)
	dotenv, envErr := config.ReadDotEnv(*envPath)
	prefs, applyErr := config.ApplyEnv(prefs, config.LookupWith(dotenv))
	if *locale != "" {
		prefs.Locale = *locale
	}

	log := logger.New(prefs.LogPath)
	if created {
		log.Logf("config: wrote defaults to %s", *configPath)
	}
	for _, e := range []error{err, envErr, applyErr} {
		if e != nil {
			log.Logf("%v (using defaults)", e)
		}
	}

	a, err := app.New(prefs, log)
	if err != nil {
		log.Logf("startup: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	graphics.Run(a.Window(), a)
}
