// Package dataset loads transaction databases and ships the sample data
// used by the CLI and the tests.
//
// Text format (Load / LoadFile):
//
//	# comment lines and blank lines are ignored
//	milk bread butter
//	bread, jam
//
// One transaction per line. By default items are separated by any run of
// whitespace and/or commas; WithSeparator switches to a literal separator.
// Items are trimmed, duplicates inside a line are collapsed, and lines
// without items are skipped. Input may be decoded from a legacy 8-bit
// encoding (WithEncoding) and folded to lower case (WithLowercase).
// LoadFile also reads snappy-framed (.sz) and zstd (.zst) compressed files.
//
// Reference returns the ten-basket a–j dataset; Synthetic generates random
// market baskets over a vocabulary of generated words.
package dataset
