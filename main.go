/*
Facet renders a textured pentagon, a grid of spinning cubes and an
overlay glyph with WebGPU. Settings are read from facet.toml, or from
the file named by FACET_CONFIG.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/facet/engine"
	"github.com/spaghettifunk/facet/testbed"
)

func main() {
	configPath := engine.ConfigPath()
	config, err := engine.LoadApplicationConfig(configPath)
	if err != nil {
		panic(err)
	}

	tb := testbed.NewTestGame(config)

	engine, err := engine.New(tb.Game, configPath)
	if err != nil {
		panic(err)
	}

	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		engine.RequestQuit()
	}()

	// run engine
	if err := engine.Run(); err != nil {
		panic(err)
	}

	if err := engine.Shutdown(); err != nil {
		panic(err)
	}
}
