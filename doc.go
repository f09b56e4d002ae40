// Package optics provides composable read-optics for immutable data: folds
// over zero or more targets, getters, lenses, prisms, isomorphisms,
// optionals, and traversals.
//
// Fold is the center of the package. It is defined by one primitive,
// foldMap, a monoid reduction over every target reachable from a source;
// size, search, collection, and emptiness queries all derive from it. Every
// other optic kind converts to a Fold via AsFold, which is how the
// ComposeFold* family composes mixed optic kinds down to the weakest common
// kind.
//
// All optics are immutable values; constructing and composing them never
// touches a source, and applying them never mutates one.
package optics
