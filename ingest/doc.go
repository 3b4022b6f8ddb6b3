// Package ingest parses delimited numeric text into a dense row-major matrix.
//
// Only the selected columns are parsed. Field and decimal separators are
// configurable, a header line may be skipped, and malformed rows are either
// skipped or reported as a *ParseError. Inputs compressed with gzip, zstd or
// lz4 can be unwrapped with Decompress before reading.
package ingest
