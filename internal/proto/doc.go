// Package proto extracts catalog metadata from PROTO descriptor files. It reads
// the leading comment header (license, documentation url, tags, description),
// the interface field declarations and the node type instantiated by the body.
// Extraction is pattern based: descriptor bodies are not validated.
package proto
