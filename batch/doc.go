// Package batch implements the batch iterator: the central algorithm that,
// given the current pattern dictionary and a freshly assembled batch graph,
// finds every embedding of every pattern, extends each embedding by one
// layer of incident batch structure, installs the resulting candidate
// patterns into the dictionary, and finally folds any batch edge left
// uncovered by an extension into the dictionary as a single-edge pattern.
//
// The four steps below (Match, Extend, Install, Cover-the-residue) use
// strict snapshot semantics: the matching loop iterates the dictionary
// view captured at entry, and every extension is applied to the live
// dictionary only after matching has completed.
package batch
