// Package pattern maintains the bounded pattern dictionary: an unordered
// multiset of (pattern graph, count, score) entries deduplicated by
// label-preserving isomorphism.
//
// The dictionary never hashes graphs by structural canonical form — it is
// deliberately an unordered list, compared entry-by-entry via
// iso.IsIsomorphic, because no canonical hashing scheme is assumed to exist
// for labeled multigraphs in general.
package pattern
