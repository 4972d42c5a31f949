// Package stream reads sequences of encoded records from a byte stream.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/basekick-labs/recwire/pkg/decode"
	"github.com/basekick-labs/recwire/pkg/reader"
	"github.com/basekick-labs/recwire/pkg/record"
)

// Reader decodes a sequence of records from an io.Reader. Records are
// back-to-back on the wire with no framing; the schema's field order defines
// each record's byte layout. Gzip-compressed input is detected by magic
// bytes and decompressed transparently.
//
// A Reader is single-use and not safe for concurrent use: the underlying
// stream is consumed sequentially by one call chain.
type Reader struct {
	dec    *decode.StreamDecoder
	rdr    reader.ValueReader
	logger zerolog.Logger

	records int64
	started time.Time
}

// NewReader creates a stream reader decoding records with rdr.
func NewReader(src io.Reader, rdr reader.ValueReader, logger zerolog.Logger) (*Reader, error) {
	buffered := bufio.NewReader(src)

	// Sniff for gzip magic bytes. Peek errors are deferred to the first
	// decode so an empty stream still reports clean EOF.
	if magic, err := buffered.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return newReader(gz, rdr, logger), nil
	}
	return newReader(buffered, rdr, logger), nil
}

func newReader(src io.Reader, rdr reader.ValueReader, logger zerolog.Logger) *Reader {
	return &Reader{
		dec: decode.NewStreamDecoder(src),
		rdr: rdr,
		logger: logger.With().
			Str("component", "stream-reader").
			Str("session", uuid.NewString()).
			Logger(),
		started: time.Now(),
	}
}

// Decoder returns the underlying stream decoder.
func (r *Reader) Decoder() *decode.StreamDecoder {
	return r.dec
}

// Next reads one record. reuse may be a record returned by a previous Next
// call; it is then overwritten in place instead of allocating.
//
// Returns io.EOF when the stream ends cleanly at a record boundary. A stream
// that ends inside a record is corrupt and yields a decode error instead.
func (r *Reader) Next(reuse *record.Record) (*record.Record, error) {
	start := r.dec.BytesRead()

	v, err := r.rdr.Read(r.dec, reuse)
	if err != nil {
		if errors.Is(err, io.EOF) && r.dec.BytesRead() == start {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("record %d: %w", r.records, err)
	}

	rec, ok := v.(*record.Record)
	if !ok {
		return nil, fmt.Errorf("record %d: reader produced %T, not a record", r.records, v)
	}
	r.records++
	return rec, nil
}

// ReadAll reads records until clean EOF and logs decode stats.
func (r *Reader) ReadAll() ([]*record.Record, error) {
	var records []*record.Record
	for {
		rec, err := r.Next(nil)
		if err == io.EOF {
			break
		}
		if err != nil {
			r.logger.Error().
				Err(err).
				Int64("records", r.records).
				Int64("bytes", r.dec.BytesRead()).
				Msg("Stream decode failed")
			return nil, err
		}
		records = append(records, rec)
	}

	r.logger.Info().
		Int64("records", r.records).
		Int64("bytes", r.dec.BytesRead()).
		Dur("elapsed", time.Since(r.started)).
		Msg("Stream read complete")

	return records, nil
}

// Records returns the number of records decoded so far.
func (r *Reader) Records() int64 {
	return r.records
}
