// Command hkclip copies a snippet of text to the system clipboard every
// time the hotkey fires, no matter which window has focus.
//
//	hkclip -hotkey "ctrl+alt+Digit1" -text "standup notes:"
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	globalhotkey "github.com/tauri-apps/global-hotkey"
	"github.com/tauri-apps/global-hotkey/hotkey"
)

func main() {
	spec := flag.String("hotkey", "ctrl+alt+Digit1", "hotkey that triggers the copy")
	text := flag.String("text", "", "text to place on the clipboard")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *text == "" {
		log.Fatal().Msg("-text is required")
	}

	hk, err := hotkey.Parse(*spec)
	if err != nil {
		log.Fatal().Err(err).Str("spec", *spec).Msg("cannot parse hotkey")
	}

	// The handler runs synchronously on the backend's polling goroutine,
	// so there is no channel to drain.
	bus := globalhotkey.NewEventBus()
	bus.SetHandler(func(ev globalhotkey.Event) {
		if ev.State != globalhotkey.StatePressed {
			return
		}
		if err := clipboard.WriteAll(*text); err != nil {
			log.Error().Err(err).Msg("clipboard write failed")
			return
		}
		log.Info().Msg("copied to clipboard")
	})

	manager, err := globalhotkey.NewManager(globalhotkey.WithEventBus(bus))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start hotkey manager")
	}
	defer manager.Close()

	if err := manager.Register(hk); err != nil {
		log.Fatal().Err(err).Stringer("hotkey", hk).Msg("cannot register hotkey")
	}
	log.Info().Stringer("hotkey", hk).Msg("ready, press the hotkey to copy")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}
