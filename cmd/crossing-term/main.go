package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/bugcrossing/assets/stage"
	"github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/core"
	"github.com/automoto/bugcrossing/term"
	"github.com/gdamore/tcell/v2"
)

type options struct {
	configPath string
	tps        int
	seed       int64
	mute       bool
	logPath    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	flag.IntVar(&opts.tps, "tps", 0, "Simulation ticks per second (overrides config)")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed for enemy lanes and speeds (0 uses the clock)")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound")
	flag.StringVar(&opts.logPath, "log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run owns every resource so deferred cleanup happens before main exits.
func run(opts options) error {
	if opts.configPath != "" {
		if err := config.LoadFile(opts.configPath); err != nil {
			return err
		}
	}
	if opts.tps > 0 {
		config.C.TPS = opts.tps
	}

	// the screen owns stdout, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state := core.NewState(config.Rules, rand.New(rand.NewSource(seed)))
	terrain := stage.MustLoad(config.Stage.LayerName)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	var sound term.Sounder = term.Silent{}
	if !opts.mute {
		beeper, err := term.NewBeeper()
		if err != nil {
			log.Printf("Warning: sound disabled: %v", err)
		} else {
			defer beeper.Close()
			sound = beeper
		}
	}

	game := term.NewGame(screen, state, terrain, sound)
	log.Printf("Session: seed %d at %d ticks/s", seed, config.C.TPS)
	game.Run(time.Second / time.Duration(config.C.TPS))
	log.Printf("Session: exit %s", game)
	return nil
}
