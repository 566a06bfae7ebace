package reactive

import "github.com/nodalgraph/reactive/internal"

// Op tags the kind of access an interceptor performed, surfaced to
// onTrack/onTrigger dev hooks.
type Op = internal.Op

// Op values, re-exported from internal for dev-hook consumers.
const (
	OpSet     = internal.OpSet
	OpAdd     = internal.OpAdd
	OpDelete  = internal.OpDelete
	OpClear   = internal.OpClear
	OpGet     = internal.OpGet
	OpHas     = internal.OpHas
	OpIterate = internal.OpIterate
)
