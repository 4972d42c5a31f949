package reader

import (
	"github.com/basekick-labs/recwire/pkg/decode"
)

// Primitive readers delegate straight to the matching decoder read. Like the
// temporal readers they are stateless singletons; decoded values are
// returned fresh, so reuse is ignored.

var (
	intReaderInstance    = intReader{}
	longReaderInstance   = longReader{}
	floatReaderInstance  = floatReader{}
	doubleReaderInstance = doubleReader{}
	boolReaderInstance   = boolReader{}
	stringReaderInstance = stringReader{}
	bytesReaderInstance  = bytesReader{}
)

// Ints returns the reader for signed 32-bit integers.
func Ints() ValueReader { return intReaderInstance }

// Longs returns the reader for signed 64-bit integers.
func Longs() ValueReader { return longReaderInstance }

// Floats returns the reader for 32-bit IEEE 754 floats.
func Floats() ValueReader { return floatReaderInstance }

// Doubles returns the reader for 64-bit IEEE 754 floats.
func Doubles() ValueReader { return doubleReaderInstance }

// Bools returns the reader for booleans.
func Bools() ValueReader { return boolReaderInstance }

// Strings returns the reader for length-prefixed UTF-8 strings.
func Strings() ValueReader { return stringReaderInstance }

// Bytes returns the reader for length-prefixed byte arrays.
func Bytes() ValueReader { return bytesReaderInstance }

type intReader struct{}

func (intReader) Read(d decode.Decoder, _ any) (any, error) {
	v, err := d.ReadInt()
	if err != nil {
		return nil, err
	}
	return v, nil
}

type longReader struct{}

func (longReader) Read(d decode.Decoder, _ any) (any, error) {
	v, err := d.ReadLong()
	if err != nil {
		return nil, err
	}
	return v, nil
}

type floatReader struct{}

func (floatReader) Read(d decode.Decoder, _ any) (any, error) {
	v, err := d.ReadFloat()
	if err != nil {
		return nil, err
	}
	return v, nil
}

type doubleReader struct{}

func (doubleReader) Read(d decode.Decoder, _ any) (any, error) {
	v, err := d.ReadDouble()
	if err != nil {
		return nil, err
	}
	return v, nil
}

type boolReader struct{}

func (boolReader) Read(d decode.Decoder, _ any) (any, error) {
	v, err := d.ReadBool()
	if err != nil {
		return nil, err
	}
	return v, nil
}

type stringReader struct{}

func (stringReader) Read(d decode.Decoder, _ any) (any, error) {
	v, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	return v, nil
}

type bytesReader struct{}

func (bytesReader) Read(d decode.Decoder, _ any) (any, error) {
	v, err := d.ReadBytes()
	if err != nil {
		return nil, err
	}
	return v, nil
}
