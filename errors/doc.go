// Package errors provides structured error types for the valwire codec.
//
// Every error carries a Phase (encode, decode, convert) and a Kind
// (construction, truncated, unknown_tag, length_overflow, ...) so callers
// can match failures with errors.Is without parsing messages:
//
//	_, err := valwire.Decode(data)
//	if errors.Is(err, &codecerr.Error{Phase: codecerr.PhaseDecode, Kind: codecerr.KindTruncated}) {
//	    // re-fetch the buffer
//	}
//
// Decode errors additionally carry the byte offset where the failure was
// detected, and composite failures carry the path into the value tree
// (e.g. "map[2].key").
package errors
