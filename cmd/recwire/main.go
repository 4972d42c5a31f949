package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/basekick-labs/recwire/internal/config"
	"github.com/basekick-labs/recwire/internal/logger"
	"github.com/basekick-labs/recwire/internal/resolve"
	"github.com/basekick-labs/recwire/pkg/record"
	"github.com/basekick-labs/recwire/pkg/schema"
	"github.com/basekick-labs/recwire/pkg/stream"
)

// Version is set at build time
var Version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "dump" {
		runDumpSubcommand(os.Args[2:])
		return
	}

	fmt.Fprintln(os.Stderr, "usage: recwire dump -schema <schema.json> [-input <file>] [-format json|msgpack] [-limit <n>]")
	os.Exit(2)
}

func runDumpSubcommand(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "path to the JSON schema describing the record layout")
	input := fs.String("input", "-", "encoded input file, or - for stdin")
	format := fs.String("format", "json", "output format: json or msgpack")
	limit := fs.Int("limit", 0, "stop after this many records (0 = all)")
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	if *schemaPath == "" {
		log.Fatal().Msg("-schema is required")
	}
	if *format != "json" && *format != "msgpack" {
		log.Fatal().Str("format", *format).Msg("Unknown output format")
	}

	schemaDoc, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *schemaPath).Msg("Failed to read schema file")
	}
	st, err := schema.ParseJSON(schemaDoc)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse schema")
	}

	sr, err := resolve.Readers(st, resolve.Options{
		ValidateTimeOfDay: cfg.Decode.ValidateTimeOfDay,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build readers for schema")
	}

	in := os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("path", *input).Msg("Failed to open input")
		}
		defer f.Close()
		in = f
	}

	r, err := stream.NewReader(in, sr, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open record stream")
	}
	r.Decoder().SetMaxBytesLen(cfg.Decode.MaxBytesLen)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	// Each record is emitted before the next is decoded, so the previous
	// record can be handed back for reuse.
	var reuse *record.Record
	for {
		rec, err := r.Next(reuse)
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal().Err(err).Int64("records", r.Records()).Msg("Decode failed")
		}

		if err := emit(out, rec.Map(), *format); err != nil {
			log.Fatal().Err(err).Msg("Failed to write record")
		}
		reuse = rec

		if *limit > 0 && r.Records() >= int64(*limit) {
			break
		}
	}

	log.Info().
		Int64("records", r.Records()).
		Int64("bytes", r.Decoder().BytesRead()).
		Msg("Dump complete")
}

func emit(out io.Writer, m map[string]any, format string) error {
	if format == "msgpack" {
		payload, err := msgpack.Marshal(m)
		if err != nil {
			return err
		}
		_, err = out.Write(payload)
		return err
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if _, err := out.Write(payload); err != nil {
		return err
	}
	_, err = out.Write([]byte{'\n'})
	return err
}
