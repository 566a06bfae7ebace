package reactive

import "github.com/nodalgraph/reactive/internal"

// RawMap, RawSlice, RawOrderedMap, RawSet, RawWeakMap, and RawWeakSet are the
// observable raw shapes spec §3 describes: the only concrete types Reactive
// and Readonly know how to wrap. Application code rarely constructs these
// directly — NewMap/NewSlice/NewOrderedMap/NewCollectionSet/NewWeakMap/
// NewWeakSet allocate one and wrap it in a single step — but they are
// exported so a raw target can be opted out with MarkNonReactive, or pre-opted
// into readonly with MarkReadonly, before it is ever wrapped.
type (
	RawMap        = internal.RawMap
	RawSlice      = internal.RawSlice
	RawOrderedMap = internal.RawOrderedMap
	RawSet        = internal.RawSet
	RawWeakMap    = internal.RawWeakMap
	RawWeakSet    = internal.RawWeakSet
)

// NewRawMap allocates a raw plain-object shape seeded with a copy of initial.
func NewRawMap(initial map[string]any) *RawMap { return internal.NewRawMap(initial) }

// NewRawSlice allocates a raw ordered-sequence shape seeded with a copy of
// initial.
func NewRawSlice(initial []any) *RawSlice { return internal.NewRawSlice(initial) }

// NewRawOrderedMap allocates an empty raw key-value container shape.
func NewRawOrderedMap() *RawOrderedMap { return internal.NewRawOrderedMap() }

// NewRawSet allocates an empty raw set-like container shape.
func NewRawSet() *RawSet { return internal.NewRawSet() }

// NewRawWeakMap allocates an empty raw weak key-value shape.
func NewRawWeakMap() *RawWeakMap { return internal.NewRawWeakMap() }

// NewRawWeakSet allocates an empty raw weak set shape.
func NewRawWeakSet() *RawWeakSet { return internal.NewRawWeakSet() }

// wrapProxy lifts an internal proxy value (returned by System.Reactive,
// System.Readonly, or read back out of a container/ref) into its
// root-package wrapper type. Values that are not one of the six observable
// shapes (primitives, nil, already-unwrapped user data) pass through
// unchanged.
func wrapProxy(sys *internal.System, proxy any) any {
	switch t := proxy.(type) {
	case *internal.ObservedMap:
		return &Map{sys: sys, raw: rawOf[*internal.RawMap](sys, t), m: t}
	case *internal.ReadonlyMap:
		return &ReadonlyMap{sys: sys, raw: rawOf[*internal.RawMap](sys, t), m: t}
	case *internal.ObservedSlice:
		return &Slice{sys: sys, raw: rawOf[*internal.RawSlice](sys, t), s: t}
	case *internal.ReadonlySlice:
		return &ReadonlySlice{sys: sys, raw: rawOf[*internal.RawSlice](sys, t), s: t}
	case *internal.OrderedMap:
		return &OrderedMap{sys: sys, raw: rawOf[*internal.RawOrderedMap](sys, t), m: t}
	case *internal.ReadonlyOrderedMap:
		return &ReadonlyOrderedMap{sys: sys, raw: rawOf[*internal.RawOrderedMap](sys, t), m: t}
	case *internal.Set:
		return &CollectionSet{sys: sys, raw: rawOf[*internal.RawSet](sys, t), s: t}
	case *internal.ReadonlySet:
		return &ReadonlyCollectionSet{sys: sys, raw: rawOf[*internal.RawSet](sys, t), s: t}
	case *internal.WeakOrderedMap:
		return &WeakMap{sys: sys, raw: rawOf[*internal.RawWeakMap](sys, t), m: t}
	case *internal.ReadonlyWeakOrderedMap:
		return &ReadonlyWeakMap{sys: sys, raw: rawOf[*internal.RawWeakMap](sys, t), m: t}
	case *internal.WeakSet:
		return &WeakSet{sys: sys, raw: rawOf[*internal.RawWeakSet](sys, t), s: t}
	case *internal.ReadonlyWeakSet:
		return &ReadonlyWeakSet{sys: sys, raw: rawOf[*internal.RawWeakSet](sys, t), s: t}
	default:
		return proxy
	}
}

func rawOf[R any](sys *internal.System, proxy any) R {
	raw, _ := sys.ToRaw(proxy).(R)
	return raw
}

// reactiveHandle is implemented by every root wrapper type (Map, Slice,
// OrderedMap, CollectionSet, WeakMap, WeakSet, and their Readonly
// counterparts), letting Reactive/Readonly/ToRaw/IsReactive/IsReadonly/
// Dispose/MarkReadonly/MarkNonReactive accept either a raw shape or an
// already-wrapped proxy and resolve to the right internal value either way.
type reactiveHandle interface {
	rawTarget() any
	proxyTarget() any
}

func resolveRaw(x any) any {
	if h, ok := x.(reactiveHandle); ok {
		return h.rawTarget()
	}
	return x
}

func resolveProxy(x any) any {
	if h, ok := x.(reactiveHandle); ok {
		return h.proxyTarget()
	}
	// A *Ref[T] written into a container must be stored as its underlying
	// *internal.Ref, so the container's ref-forwarding logic (wrapChildRead,
	// Set's old.(*internal.Ref) check) recognizes it on both write and
	// read-back.
	if rl, ok := x.(refLike); ok {
		return rl.internalRef()
	}
	return x
}

func reactiveOn(sys *internal.System, target any) any {
	return wrapProxy(sys, sys.Reactive(resolveRaw(target)))
}

func readonlyOn(sys *internal.System, target any) any {
	return wrapProxy(sys, sys.Readonly(resolveRaw(target)))
}
