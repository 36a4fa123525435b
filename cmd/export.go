package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fortelabs/pcsets/constants"
	"github.com/fortelabs/pcsets/export"
	"github.com/fortelabs/pcsets/parse"
	"github.com/fortelabs/pcsets/pcset"
)

var (
	exportDir    string
	exportFamily bool
)

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (default $PCSETS_OUT or ./out)")
	exportCmd.Flags().BoolVar(&exportFamily, "family", false, "write the whole transformation family")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <pitch classes>",
	Short: "Writes a set as MIDI",
	Long:  `Writes a pitch class set, or its whole transformation family, as MIDI files`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need a pitch class set, e.g. 0,4,7")
		}
		runExport(strings.Join(args, " "))
	},
}

func runExport(input string) {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pcs, err := parse.Set(input)
	if err != nil {
		panic("Could not parse set: " + err.Error())
	}
	s := pcset.New(pcs...)

	dir := exportDir
	if dir == "" {
		dir = constants.GetOutDir()
	}

	if exportFamily {
		written, err := export.WriteFamily(s, dir)
		if err != nil {
			logger.Fatal("could not write family", zap.Error(err))
		}
		logger.Info("wrote transformation family",
			zap.String("dir", dir),
			zap.Int("files", len(written)))
		return
	}

	if err := os.MkdirAll(dir, 0777); err != nil {
		logger.Fatal("could not create output dir", zap.Error(err))
	}
	path := filepath.Join(dir, "set-"+uuid.New().String()+".mid")
	if err := export.WriteSet(s, path); err != nil {
		logger.Fatal("could not write midi", zap.Error(err))
	}
	logger.Info("wrote midi", zap.String("path", path))
}
