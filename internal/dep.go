package internal

import "slices"

// dep is the set of effects that have read a particular (target, key) pair.
// Membership is insertion-ordered, matching the teacher's reactionTracker,
// so that firing order within a class is deterministic per spec ordering
// guarantee (ii) for the dep-sets of one key and its shape key. A CLEAR
// gathers its dep-sets by ranging over the target's depMap, so for CLEAR the
// order across keys is not defined.
type dep struct {
	effects []*Effect
}

func newDep() *dep {
	return &dep{}
}

// add inserts e if absent and reports whether it was newly linked.
func (d *dep) add(e *Effect) bool {
	if slices.Contains(d.effects, e) {
		return false
	}
	d.effects = append(d.effects, e)
	return true
}

func (d *dep) remove(e *Effect) {
	if i := slices.Index(d.effects, e); i >= 0 {
		d.effects = slices.Delete(d.effects, i, i+1)
	}
}

func (d *dep) has(e *Effect) bool {
	return slices.Contains(d.effects, e)
}

// snapshot clones the member list so callers can fire effects while other
// effects mutate the dep (e.g. an effect that stops another effect mid-run).
func (d *dep) snapshot() []*Effect {
	return slices.Clone(d.effects)
}

// depMap is the per-target key -> dep map; targetMap is raw -> depMap.
type depMap map[any]*dep
