// Package virtual presents a finite ordered collection as a much longer,
// wrap-around sequence so a scrolling grid can be swiped in either direction
// without reaching an edge.
//
// A Model never copies its backing collection. Every query reads the backing
// length live, which keeps the model consistent when the backing grows after
// construction. Callers must not assume Len is stable across calls if they
// mutate the backing.
package virtual
