// Package rtti provides runtime type information for widget items, so
// dynamically-typed tools (a property inspector, a data-binding layer, a
// remote-control surface) can read, write, bind, animate, and link the
// strongly-typed reactive properties embedded in item structs without
// knowing their concrete types at compile time.
//
// # Core Components
//
//   - [Value]: the closed dynamic value domain every erased access reduces
//     to. Callers that need their own representation implement the
//     [ValueType] contract instead; the accessor machinery is generic over
//     the shape.
//
//   - [FieldOffset]: a located field, the byte offset of a property or
//     plain field within an item's struct layout plus the view operation
//     that turns an item pointer into a field pointer.
//
//   - [PropertyInfo] and [FieldInfo]: type-erased capabilities over one
//     reactive cell or one plain field. One static instance exists per
//     (item type, field, value shape) combination; nothing is allocated
//     per call.
//
//   - [AnimatedBindingKind]: how a just-attached binding's output changes
//     are presented: instantly, over a fixed animation, or over a
//     transition whose curve is chosen afresh on every reactivation.
//
//   - [TypeDescriptor]: the per-widget-kind table of named properties,
//     fields, and signals. [RegisterItem] publishes a descriptor in the
//     process-wide registry under the canonical [Value] shape, where
//     [LookupItem] hands fully erased access to tools like the inspector.
//
// # Animation dispatch
//
// Whether a property accessor can animate is decided once, when the
// descriptor table is built: [NewProperty] checks the lerp registry
// (animation.LerpFor) for the cell's concrete type and picks the plain or
// the animation-capable implementation. Call sites never branch on the
// capability; a plain accessor simply reports [AnimationUnsupportedError]
// when given an animation.
//
// # Errors
//
// Recoverable failures are [ConversionError] (value and field type are
// incompatible) and [AnimationUnsupportedError] (animation requested on a
// non-interpolatable property). A binding that produces an inconvertible
// value after attachment is a defect in the binding's author's code and
// panics with [BindingDefect]. Two-way linking verifies the peer's type
// tag and reports [LinkMismatchError] on a mismatch.
//
// Everything in this package runs on the UI thread that owns the item
// tree; descriptor tables are built during package initialization and are
// read-only afterward.
package rtti
