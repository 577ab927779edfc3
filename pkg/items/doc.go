// Package items defines the builtin widget item structs and publishes
// their accessor tables in the rtti registry.
//
// Items are plain structs whose state lives in embedded [property.Property]
// cells and [property.Signal] slots at fixed offsets. The runtime lays
// items out statically and never moves them while they are alive, which is
// what makes the offset-based access in package rtti sound.
//
// Each item file declares the struct and a generic XxxDescriptor function
// that builds the accessor table for any dynamic value shape. The init
// functions register the canonical-shape tables, so importing this package
// is all a tool needs to see every builtin kind through rtti.LookupItem.
package items
