// Package registry discovers PROTO descriptor files under a scan root, parses
// them and stores the results in a name-keyed Registry. Descriptor names are
// the unit of cross-reference between PROTO files and must be unique. The
// package also loads the closed set of foundational (base) node names.
package registry
