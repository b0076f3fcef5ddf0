package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/zencodec/zstdstream"
)

func main() {
	var (
		inputFlag, outputFlag       string
		qualityFlag                 int
		decompressFlag, verboseFlag bool
	)

	flag.StringVar(&inputFlag, "f", "", "input filename")
	flag.StringVar(&outputFlag, "o", "", "output filename")
	flag.IntVar(&qualityFlag, "q", zstdstream.DefaultLevel, "compression quality (lower == faster)")
	flag.BoolVar(&decompressFlag, "d", false, "decompress instead of compress")
	flag.BoolVar(&verboseFlag, "v", false, "be verbose")

	flag.Parse()

	var err error
	var logger *zap.Logger
	if verboseFlag {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("failed to initialize logger", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if inputFlag == "" || outputFlag == "" {
		logger.Fatal("both input and output files need to be defined")
	}

	var input io.Reader
	size := int64(-1)
	if inputFlag == "-" {
		input = os.Stdin
	} else {
		f, err := os.Open(inputFlag)
		if err != nil {
			logger.Fatal("failed to open input", zap.Error(err))
		}
		defer f.Close()
		if st, err := f.Stat(); err == nil {
			size = st.Size()
		}
		input = f
	}

	var output io.Writer
	if outputFlag == "-" {
		output = os.Stdout
	} else {
		f, err := os.OpenFile(outputFlag, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			logger.Fatal("failed to open output", zap.Error(err))
		}
		defer f.Close()
		output = f
	}

	bar := progressbar.DefaultBytes(size, "processing")
	input = io.TeeReader(input, bar)

	if decompressFlag {
		err = zstdstream.Decompress(output, input, zstdstream.WithDLogger(logger))
	} else {
		err = zstdstream.Compress(output, input,
			zstdstream.WithLevel(qualityFlag), zstdstream.WithCLogger(logger))
	}
	if err != nil {
		logger.Fatal("failed to process stream", zap.Error(err))
	}
	_ = bar.Finish()

	st := zstdstream.Stats()
	logger.Info("done",
		zap.Uint64("raw_in", st.RawIn),
		zap.Uint64("comp_out", st.CompOut),
		zap.Uint64("comp_in", st.CompIn),
		zap.Uint64("raw_out", st.RawOut))
}
