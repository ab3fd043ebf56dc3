// Package dag orders the documents of a build so that every document comes
// after all of the documents it includes.
//
// The ordering is a depth-first search over the dependency digraph with the
// classic three visitation states. Reaching a vertex that is still in
// progress means the digraph contains a cycle; that is fatal for the build and
// is reported as a *CycleError naming the path around the cycle.
package dag
