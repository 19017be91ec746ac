// Package resolve runs the passes that complete descriptor metadata once the
// registry is fully loaded:
//
//   - Hierarchy follows each descriptor's proto type through other
//     descriptors down to a foundational node and records it as the base type.
//   - Ancestors flags container based descriptors (Solid, Transform, Group)
//     that contain a device and therefore need a Robot ancestor.
//   - Slots finds the connector type of Slot based descriptors.
//
// All chain walks are iterative and bounded by the registry size.
package resolve
