package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/secolib/seco/container"
	"github.com/secolib/seco/format"
)

const (
	success = 0
	failure = 1
)

const (
	algoNone = "none"
	algoZlib = "zlib"
	algoZstd = "zstd"
)

func main() {
	os.Exit(run())
}

func run() int {

	// Initialize the logger.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	if len(os.Args) < 2 {
		log.Error().Msg("missing command (\"seal\", \"open\" or \"inspect\")")
		return failure
	}

	switch os.Args[1] {
	case "seal":
		return runSeal(log, os.Args[2:])
	case "open":
		return runOpen(log, os.Args[2:])
	case "inspect":
		return runInspect(log, os.Args[2:])
	default:
		log.Error().Str("command", os.Args[1]).Msg("unknown command")
		return failure
	}
}

func runSeal(log zerolog.Logger, args []string) int {

	// Parse the command line arguments.
	var (
		flagIn         string
		flagOut        string
		flagAlgo       string
		flagLevel      int
		flagNoChecksum bool
	)

	flags := pflag.NewFlagSet("seal", pflag.ContinueOnError)
	flags.StringVarP(&flagIn, "in", "i", "", "input file to seal")
	flags.StringVarP(&flagOut, "out", "o", "", "output file for the sealed frame")
	flags.StringVarP(&flagAlgo, "algo", "a", algoZstd, "compression algorithm (\"none\", \"zlib\" or \"zstd\")")
	flags.IntVarP(&flagLevel, "level", "l", 0, "compression level (0 uses the codec default)")
	flags.BoolVar(&flagNoChecksum, "no-checksum", false, "skip the payload checksum")

	err := flags.Parse(args)
	if err != nil {
		log.Error().Err(err).Msg("could not parse flags")
		return failure
	}
	if flagIn == "" || flagOut == "" {
		log.Error().Msg("both --in and --out are required")
		return failure
	}

	kind, ok := kindFromName(flagAlgo)
	if !ok {
		log.Error().Str("algo", flagAlgo).Msg("invalid compression algorithm specified")
		return failure
	}

	data, err := os.ReadFile(flagIn)
	if err != nil {
		log.Error().Str("in", flagIn).Err(err).Msg("could not read input file")
		return failure
	}

	opts := []container.Option{container.WithCodec(kind)}
	if flagLevel != 0 {
		opts = append(opts, container.WithLevel(flagLevel))
	}
	if flagNoChecksum {
		opts = append(opts, container.WithChecksum(false))
	}

	frame, err := container.Seal(data, opts...)
	if err != nil {
		log.Error().Err(err).Msg("could not seal payload")
		return failure
	}

	err = os.WriteFile(flagOut, frame, 0o644)
	if err != nil {
		log.Error().Str("out", flagOut).Err(err).Msg("could not write output file")
		return failure
	}

	log.Info().
		Str("algo", flagAlgo).
		Int("input_bytes", len(data)).
		Int("frame_bytes", len(frame)).
		Msg("payload sealed")

	return success
}

func runOpen(log zerolog.Logger, args []string) int {

	var (
		flagIn  string
		flagOut string
	)

	flags := pflag.NewFlagSet("open", pflag.ContinueOnError)
	flags.StringVarP(&flagIn, "in", "i", "", "sealed frame to open")
	flags.StringVarP(&flagOut, "out", "o", "", "output file for the restored payload")

	err := flags.Parse(args)
	if err != nil {
		log.Error().Err(err).Msg("could not parse flags")
		return failure
	}
	if flagIn == "" || flagOut == "" {
		log.Error().Msg("both --in and --out are required")
		return failure
	}

	frame, err := os.ReadFile(flagIn)
	if err != nil {
		log.Error().Str("in", flagIn).Err(err).Msg("could not read input file")
		return failure
	}

	payload, err := container.Open(frame)
	if err != nil {
		log.Error().Err(err).Msg("could not open frame")
		return failure
	}

	err = os.WriteFile(flagOut, payload, 0o644)
	if err != nil {
		log.Error().Str("out", flagOut).Err(err).Msg("could not write output file")
		return failure
	}

	log.Info().
		Int("frame_bytes", len(frame)).
		Int("payload_bytes", len(payload)).
		Msg("frame opened")

	return success
}

func runInspect(log zerolog.Logger, args []string) int {

	var flagIn string

	flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	flags.StringVarP(&flagIn, "in", "i", "", "sealed frame to inspect")

	err := flags.Parse(args)
	if err != nil {
		log.Error().Err(err).Msg("could not parse flags")
		return failure
	}
	if flagIn == "" {
		log.Error().Msg("--in is required")
		return failure
	}

	frame, err := os.ReadFile(flagIn)
	if err != nil {
		log.Error().Str("in", flagIn).Err(err).Msg("could not read input file")
		return failure
	}

	// Inspection reads only the header, so it works for frames sealed with
	// codecs this build cannot decode.
	info, err := container.InspectFrame(frame)
	if err != nil {
		log.Error().Err(err).Msg("could not inspect frame")
		return failure
	}

	log.Info().
		Str("kind", info.KindName).
		Bool("supported", info.Supported).
		Uint32("compressed_bytes", info.CompressedSize).
		Uint64("uncompressed_bytes", info.UncompressedSize).
		Bool("checksum", info.HasChecksum).
		Bool("big_endian", info.BigEndian).
		Msg("frame inspected")

	return success
}

func kindFromName(name string) (format.CompressionKind, bool) {
	switch name {
	case algoNone:
		return format.KindNone, true
	case algoZlib:
		return format.KindZlib, true
	case algoZstd:
		return format.KindZStd, true
	default:
		return format.KindUnknown, false
	}
}
