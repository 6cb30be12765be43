/*
Package markov implements a character-level, first-order Markov chain for
procedural text and name generation.

A Model is a plain immutable value: an alphabet of transition endpoints
(two sentinel markers plus the caller's characters) and a square matrix of
observed adjacency counts between them. Training folds strings into count
increments, generation performs a weighted random walk over matrix rows,
and the Encode/Decode pair gives a lossless structural form that a host can
persist however it likes. The package itself does no I/O beyond the
io.Reader and io.Writer JSON helpers.

All operations are synchronous and deterministic given their inputs (and,
for generation, the supplied random source). A Model is safe to share
between concurrent readers because nothing ever mutates one in place.
*/
package markov
