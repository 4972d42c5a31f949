package reader

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basekick-labs/recwire/pkg/decode"
)

func decoderForInt32(v int32) *decode.StreamDecoder {
	var buf bytes.Buffer
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
	return decode.NewStreamDecoder(&buf)
}

func decoderForInt64(v int64) *decode.StreamDecoder {
	var buf bytes.Buffer
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
	return decode.NewStreamDecoder(&buf)
}

func TestDates_RoundTrip(t *testing.T) {
	epochDay := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int32
	}{
		{"epoch", 0},
		{"after epoch", 18262}, // 2020-01-01
		{"before epoch", -719162},
		{"one day back", -1},
		{"max", math.MaxInt32},
		{"min", math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Dates().Read(decoderForInt32(tt.days), nil)
			require.NoError(t, err)

			d, ok := v.(time.Time)
			require.True(t, ok, "expected time.Time, got %T", v)

			// Day arithmetic round-trip: the result is exactly tt.days whole
			// days from the epoch date.
			want := epochDay.AddDate(0, 0, int(tt.days))
			assert.True(t, d.Equal(want), "got %v, want %v", d, want)
			assert.Equal(t, time.UTC, d.Location())
		})
	}
}

func TestDates_KnownDate(t *testing.T) {
	v, err := Dates().Read(decoderForInt32(18262), nil)
	require.NoError(t, err)

	d := v.(time.Time)
	assert.Equal(t, 2020, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 1, d.Day())
}

func TestTimes_ScalesMicrosToNanos(t *testing.T) {
	tests := []struct {
		name   string
		micros int64
	}{
		{"midnight", 0},
		{"one hour", 3600000000},
		{"sub-second precision", 1234567},
		{"end of day", MicrosPerDay - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Times().Read(decoderForInt64(tt.micros), nil)
			require.NoError(t, err)

			d, ok := v.(time.Duration)
			require.True(t, ok, "expected time.Duration, got %T", v)
			assert.Equal(t, tt.micros*1000, d.Nanoseconds())
		})
	}
}

func TestTimes_NoBoundsCheckByDefault(t *testing.T) {
	v, err := Times().Read(decoderForInt64(MicrosPerDay+5), nil)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(MicrosPerDay+5)*time.Microsecond, v)
}

func TestTimesChecked_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		micros int64
		ok     bool
	}{
		{"midnight", 0, true},
		{"last micro of day", MicrosPerDay - 1, true},
		{"exactly one day", MicrosPerDay, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TimesChecked().Read(decoderForInt64(tt.micros), nil)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTimestamps_MicrosFromEpoch(t *testing.T) {
	tests := []struct {
		name   string
		micros int64
	}{
		{"epoch", 0},
		{"2021", 1609459200000000},
		{"before epoch", -1},
		{"far before epoch", -62135596800000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Timestamps().Read(decoderForInt64(tt.micros), nil)
			require.NoError(t, err)

			ts, ok := v.(time.Time)
			require.True(t, ok, "expected time.Time, got %T", v)
			assert.True(t, ts.Equal(time.UnixMicro(tt.micros)))
			assert.Equal(t, time.UTC, ts.Location())
		})
	}
}

func TestTimestamps_KnownInstant(t *testing.T) {
	v, err := Timestamps().Read(decoderForInt64(1609459200000000), nil)
	require.NoError(t, err)

	ts := v.(time.Time)
	assert.Equal(t, "2021-01-01T00:00:00Z", ts.Format(time.RFC3339))
}

func TestTimestampsTZ_RetainsZeroOffset(t *testing.T) {
	v, err := TimestampsTZ().Read(decoderForInt64(1609459200000000), nil)
	require.NoError(t, err)

	ts := v.(time.Time)
	_, offset := ts.Zone()
	assert.Equal(t, 0, offset)
	assert.True(t, ts.Equal(time.UnixMicro(1609459200000000)))
}

func TestTemporalReaders_IgnoreReuse(t *testing.T) {
	// Supplying an arbitrary reuse value must not change the result.
	withReuse, err := Dates().Read(decoderForInt32(100), time.Now())
	require.NoError(t, err)
	without, err := Dates().Read(decoderForInt32(100), nil)
	require.NoError(t, err)
	assert.Equal(t, without, withReuse)
}

func TestTemporalReaders_PropagateDecoderErrors(t *testing.T) {
	readers := map[string]ValueReader{
		"dates":        Dates(),
		"times":        Times(),
		"timestamps":   Timestamps(),
		"timestamptz":  TimestampsTZ(),
		"timesChecked": TimesChecked(),
	}

	for name, r := range readers {
		t.Run(name, func(t *testing.T) {
			d := decode.NewStreamDecoder(bytes.NewReader(nil))
			_, err := r.Read(d, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, io.EOF))
		})
	}
}

func TestTemporalReaders_SharedInstances(t *testing.T) {
	assert.Equal(t, Dates(), Dates())
	assert.Equal(t, Times(), Times())
	assert.Equal(t, Timestamps(), Timestamps())
	assert.Equal(t, TimestampsTZ(), TimestampsTZ())
}
