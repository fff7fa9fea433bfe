// Package csvgraph loads weighted edge lists from delimited text into a core.Graph.
//
// Each record is one edge, origin;destination;weight, with integer node IDs and
// an integer weight (a decimal with no fractional part, such as "945.0", is
// accepted). By default the separator is ';' and the first record is a header
// that is skipped. Columns after the third are ignored.
//
// Read also reports Stats about the input, including an xxhash64 digest of the
// raw bytes so that results can be tied to the exact file they came from.
package csvgraph
