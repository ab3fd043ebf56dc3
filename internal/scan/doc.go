// Package scan walks an input tree and records every file it finds as a
// document in a topologystore.Store.
//
// The walk is depth-first and sequential: each subdirectory is scanned to
// completion before the next sibling. A directory that cannot be read is
// logged and skipped together with everything below it; the rest of the tree
// is still scanned.
package scan
