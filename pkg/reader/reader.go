// Package reader decodes field values from a binary stream into Go values
// and assembles them into generic records. Readers compose: a struct reader
// drives an ordered list of field readers, each of which may itself be a
// struct reader for a nested composite.
package reader

import (
	"github.com/basekick-labs/recwire/pkg/decode"
)

// ValueReader reads one value from a decoder.
//
// reuse is an optional previously produced value of the same kind. Honoring
// it is purely an allocation optimization: implementations must produce an
// identical result whether or not reuse is supplied, and must fall back to
// fresh allocation when the supplied value is not usable. Readers with no
// mutable state are shared as package-level singletons and are safe for
// concurrent use across independent decoders.
type ValueReader interface {
	Read(d decode.Decoder, reuse any) (any, error)
}
