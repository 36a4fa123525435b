package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"go.uber.org/zap"

	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/pcset"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Classifies live MIDI input",
	Long:  `Listens on the first MIDI input port and classifies held notes`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		logger.Error("no midi input port", zap.Error(err))
		return
	}

	catalog := forte.NewCatalog()

	// note on/off arrive on the driver goroutine, classification fires on
	// the debounce timer goroutine
	var mu sync.Mutex
	onNotes := make(map[uint8]bool)
	debounced := debounce.New(150 * time.Millisecond)

	classify := func() {
		mu.Lock()
		pcs := make([]int, 0, len(onNotes))
		for key := range onNotes {
			pcs = append(pcs, int(key%12))
		}
		mu.Unlock()

		if len(pcs) == 0 {
			return
		}
		s := pcset.New(pcs...)
		if number, ok := catalog.ForteNumber(s); ok {
			fmt.Printf("%v -> %v\n", s.Classes(), number)
		} else {
			fmt.Printf("%v -> prime form %v\n", s.Classes(), s.PrimeForm())
		}
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			onNotes[key] = true
			mu.Unlock()
			debounced(classify)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(onNotes, key)
			mu.Unlock()
			debounced(classify)
		default:
			// ignore
		}
	})
	if err != nil {
		logger.Error("could not listen", zap.Error(err))
		return
	}
	defer stop()

	logger.Info("listening", zap.String("port", in.String()))
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
}
