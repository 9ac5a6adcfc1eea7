package suggest

import "github.com/humanapp/mindcraft-lang-sub000/internal/registry"

const defaultRepeatMax = 1

// collectAvailableArgSlots recurses the call-spec grammar tree, emitting
// every arg slot that can still accept a fill given how many times each slot
// id has already been filled. The choice-exclusion rule (once any option of
// a choice has a fill, only that option stays open) falls directly out of
// this walk rather than separate bookkeeping.
func collectAvailableArgSlots(spec *registry.CallSpec, argSlots []registry.ArgSlot, filled map[int]int, out *[]registry.ArgSlot, repeatMax int, rootSpec *registry.CallSpec) {
	if spec == nil {
		return
	}
	switch spec.Kind {
	case registry.SpecArg:
		slot, ok := findSlotForSpec(argSlots, spec)
		if !ok {
			return
		}
		if filled[slot.SlotID] < repeatMax {
			*out = append(*out, slot)
		}
	case registry.SpecSeq, registry.SpecBag:
		for _, item := range spec.Items {
			collectAvailableArgSlots(item, argSlots, filled, out, repeatMax, rootSpec)
		}
	case registry.SpecChoice:
		chosen := -1
		for i, opt := range spec.Items {
			if specHasAnyFill(opt, argSlots, filled) {
				chosen = i
				break
			}
		}
		if chosen >= 0 {
			collectAvailableArgSlots(spec.Items[chosen], argSlots, filled, out, repeatMax, rootSpec)
			return
		}
		for _, opt := range spec.Items {
			collectAvailableArgSlots(opt, argSlots, filled, out, repeatMax, rootSpec)
		}
	case registry.SpecOptional:
		collectAvailableArgSlots(spec.Item, argSlots, filled, out, repeatMax, rootSpec)
	case registry.SpecRepeat:
		max := spec.Max
		if max <= 0 {
			max = 1 << 30
		}
		collectAvailableArgSlots(spec.Item, argSlots, filled, out, max, rootSpec)
	case registry.SpecConditional:
		named, ok := registry.FindNamedSpec(rootSpec, spec.Condition)
		matched := ok && specHasAnyFill(named, argSlots, filled)
		if matched {
			collectAvailableArgSlots(spec.Then, argSlots, filled, out, repeatMax, rootSpec)
		} else {
			collectAvailableArgSlots(spec.Else, argSlots, filled, out, repeatMax, rootSpec)
		}
	}
}

// specHasAnyFill reports whether any arg slot reachable from spec has at
// least one fill recorded.
func specHasAnyFill(spec *registry.CallSpec, argSlots []registry.ArgSlot, filled map[int]int) bool {
	if spec == nil {
		return false
	}
	switch spec.Kind {
	case registry.SpecArg:
		slot, ok := findSlotForSpec(argSlots, spec)
		return ok && filled[slot.SlotID] > 0
	case registry.SpecSeq, registry.SpecBag, registry.SpecChoice:
		for _, item := range spec.Items {
			if specHasAnyFill(item, argSlots, filled) {
				return true
			}
		}
		return false
	case registry.SpecOptional:
		return specHasAnyFill(spec.Item, argSlots, filled)
	case registry.SpecRepeat:
		return specHasAnyFill(spec.Item, argSlots, filled)
	case registry.SpecConditional:
		return specHasAnyFill(spec.Then, argSlots, filled) || specHasAnyFill(spec.Else, argSlots, filled)
	default:
		return false
	}
}

func findSlotForSpec(argSlots []registry.ArgSlot, spec *registry.CallSpec) (registry.ArgSlot, bool) {
	for _, s := range argSlots {
		if s.ArgSpec == spec {
			return s, true
		}
	}
	return registry.ArgSlot{}, false
}
