// Package catalog loads the bundled colour libraries and serves them as
// immutable, ordered collections.
//
// Each library is read from a Source, decoded from its raw JSON shape into
// name/hex entries, converted through the color package and stored in source
// order. Entries whose hex value does not parse are dropped; a source that is
// missing, not UTF-8 or not in the expected JSON shape fails the whole load.
//
// A Catalog is built once at startup and is safe for concurrent readers.
package catalog
