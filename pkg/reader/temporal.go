package reader

import (
	"fmt"
	"time"

	"github.com/basekick-labs/recwire/pkg/decode"
)

// epoch is the UTC reference instant (1970-01-01T00:00:00Z) that all
// temporal readers offset from.
var epoch = time.Unix(0, 0).UTC()

// MicrosPerDay is the number of encoded time-of-day units in 24 hours.
const MicrosPerDay = 24 * 60 * 60 * 1000000

var (
	dateReaderInstance        = dateReader{}
	timeReaderInstance        = timeReader{}
	timeCheckedInstance       = timeReader{validate: true}
	timestampReaderInstance   = timestampReader{}
	timestampTZReaderInstance = timestampTZReader{}
)

// Dates returns the reader for calendar dates encoded as a signed 32-bit
// count of days from the epoch date. Negative counts yield dates before the
// epoch.
func Dates() ValueReader { return dateReaderInstance }

// Times returns the reader for time-of-day values encoded as a signed 64-bit
// count of microseconds since midnight. The stored unit is 1000ns, so the
// decoded nanosecond-of-day is value*1000. Values outside [0, 24h) are a
// writer bug; this reader passes them through unchecked. Use TimesChecked to
// reject them instead.
func Times() ValueReader { return timeReaderInstance }

// TimesChecked is Times with the 24-hour range invariant asserted: values
// outside [0, MicrosPerDay) fail the read.
func TimesChecked() ValueReader { return timeCheckedInstance }

// Timestamps returns the reader for zone-free timestamps encoded as a signed
// 64-bit count of microseconds from the epoch instant. The result is
// expressed in UTC calendar fields; Go's time.Time always carries a
// location, so UTC stands in for "no zone".
func Timestamps() ValueReader { return timestampReaderInstance }

// TimestampsTZ returns the reader for zone-aware timestamps: the same
// microsecond arithmetic as Timestamps, with the zero UTC offset retained
// explicitly on the result.
func TimestampsTZ() ValueReader { return timestampTZReaderInstance }

// Temporal values are immutable, so all four readers accept and ignore the
// reuse argument.

type dateReader struct{}

func (dateReader) Read(d decode.Decoder, _ any) (any, error) {
	days, err := d.ReadInt()
	if err != nil {
		return nil, err
	}
	return epoch.AddDate(0, 0, int(days)), nil
}

type timeReader struct {
	validate bool
}

func (r timeReader) Read(d decode.Decoder, _ any) (any, error) {
	micros, err := d.ReadLong()
	if err != nil {
		return nil, err
	}
	if r.validate && (micros < 0 || micros >= MicrosPerDay) {
		return nil, fmt.Errorf("time-of-day %d out of range [0, %d)", micros, int64(MicrosPerDay))
	}
	return time.Duration(micros) * time.Microsecond, nil
}

type timestampReader struct{}

func (timestampReader) Read(d decode.Decoder, _ any) (any, error) {
	micros, err := d.ReadLong()
	if err != nil {
		return nil, err
	}
	return time.UnixMicro(micros).UTC(), nil
}

type timestampTZReader struct{}

func (timestampTZReader) Read(d decode.Decoder, _ any) (any, error) {
	micros, err := d.ReadLong()
	if err != nil {
		return nil, err
	}
	return time.UnixMicro(micros).In(time.UTC), nil
}
