package internal

// Op tags the kind of access an interceptor performed, for tracking,
// triggering, and dev-mode observer payloads.
type Op int

const (
	OpSet Op = iota
	OpAdd
	OpDelete
	OpClear
	OpGet
	OpHas
	OpIterate
)

func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	case OpClear:
		return "clear"
	case OpGet:
		return "get"
	case OpHas:
		return "has"
	case OpIterate:
		return "iterate"
	default:
		return "unknown"
	}
}

// iterateKeyType is the sentinel key recorded for reads that observed the
// whole shape of a target (iteration, ownKeys, collection size). It is an
// unexported type so user keys, of any type, can never collide with it.
type iterateKeyType struct{}

// IterateKey is the sentinel inserted into a targetMap in place of a real
// key whenever an operation tracks or triggers "the whole shape" of a raw
// target.
var IterateKey any = iterateKeyType{}

// LengthKey is used instead of IterateKey for ordered sequences, so that
// add/delete on a slice trigger both "length" observers and iteration
// observers through the normal ADD/DELETE shape-key lookup.
const LengthKey = "length"
