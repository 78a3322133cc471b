// Command hkmon registers global hotkeys given on the command line and
// prints every press and release until interrupted.
//
//	hkmon "ctrl+shift+KeyD" "CmdOrCtrl+F9"
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	globalhotkey "github.com/tauri-apps/global-hotkey"
	"github.com/tauri-apps/global-hotkey/hotkey"
)

func main() {
	debug := flag.Bool("debug", false, "enable backend debug logging")
	interval := flag.Duration("interval", 50*time.Millisecond, "event poll interval")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hkmon [flags] <hotkey> [<hotkey>...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !term.IsTerminal(int(os.Stderr.Fd())),
	}).With().Timestamp().Logger()
	if !*debug {
		log = log.Level(zerolog.InfoLevel)
	}

	var hks []hotkey.HotKey
	byID := make(map[uint32]hotkey.HotKey)
	for _, spec := range flag.Args() {
		hk, err := hotkey.Parse(spec)
		if err != nil {
			log.Fatal().Err(err).Str("spec", spec).Msg("cannot parse hotkey")
		}
		hks = append(hks, hk)
		byID[hk.ID()] = hk
	}

	manager, err := globalhotkey.NewManager(
		globalhotkey.WithLogger(log),
		globalhotkey.WithPollInterval(*interval),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start hotkey manager")
	}
	defer manager.Close()

	if err := manager.RegisterAll(hks); err != nil {
		log.Fatal().Err(err).Msg("cannot register hotkeys")
	}
	for _, hk := range hks {
		log.Info().Stringer("hotkey", hk).Uint32("id", hk.ID()).Msg("registered")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	rx := manager.Receiver()
	tick := time.NewTicker(*interval)
	defer tick.Stop()
	for {
		select {
		case <-stop:
			log.Info().Msg("shutting down")
			return
		case <-tick.C:
			for {
				ev, ok := rx.TryRecv()
				if !ok {
					break
				}
				log.Info().
					Stringer("hotkey", byID[ev.ID]).
					Uint32("id", ev.ID).
					Stringer("state", ev.State).
					Msg("hotkey event")
			}
		}
	}
}
