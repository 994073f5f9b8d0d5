// Package morphio provides interchange formats for morph forests: the SWC
// sample text format, a deterministic CBOR document codec, and yaml tag-name
// tables mapping region names to integer tags.
//
// The core morph package deliberately has no bulk-load entry point; the
// readers here drive its Append API and are the supported way to get a
// morphology in and out of a file.
package morphio
