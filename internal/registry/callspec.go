package registry

import "github.com/humanapp/mindcraft-lang-sub000/internal/mctile"

// CallSpecKind tags the variant of a CallSpec grammar node.
type CallSpecKind int

const (
	SpecArg CallSpecKind = iota
	SpecSeq
	SpecBag
	SpecChoice
	SpecOptional
	SpecRepeat
	SpecConditional
)

// CallSpec is one node of a composable action-call argument grammar tree.
// The tree is structural, not identity-based, so every node carries an
// optional Name usable by a sibling conditional: a nested tagged enum with
// a name field on every node, rather than one struct type per node kind.
type CallSpec struct {
	Kind CallSpecKind
	Name string // "" means unnamed

	// arg
	TileID    mctile.TileID
	Anonymous bool
	Required  bool

	// seq / bag / choice
	Items []*CallSpec

	// optional / repeat
	Item *CallSpec
	Min  int // repeat only; default 0
	Max  int // repeat only; 0 means unbounded

	// conditional
	Condition string
	Then      *CallSpec
	Else      *CallSpec
}

func Arg(tileID mctile.TileID, anonymous, required bool, name string) *CallSpec {
	return &CallSpec{Kind: SpecArg, TileID: tileID, Anonymous: anonymous, Required: required, Name: name}
}

func Seq(items ...*CallSpec) *CallSpec { return &CallSpec{Kind: SpecSeq, Items: items} }
func Bag(items ...*CallSpec) *CallSpec { return &CallSpec{Kind: SpecBag, Items: items} }
func Choice(options ...*CallSpec) *CallSpec {
	return &CallSpec{Kind: SpecChoice, Items: options}
}
func Optional(item *CallSpec) *CallSpec { return &CallSpec{Kind: SpecOptional, Item: item} }
func Repeat(item *CallSpec, min, max int) *CallSpec {
	return &CallSpec{Kind: SpecRepeat, Item: item, Min: min, Max: max}
}
func Conditional(condition string, then, els *CallSpec) *CallSpec {
	return &CallSpec{Kind: SpecConditional, Condition: condition, Then: then, Else: els}
}

// IsOptionalNode reports whether a spec node can be satisfied with zero
// matches on its own: optional, conditional, and arg{required:false} are
// all optional.
func (s *CallSpec) IsOptionalNode() bool {
	switch s.Kind {
	case SpecOptional, SpecConditional:
		return true
	case SpecArg:
		return !s.Required
	default:
		return false
	}
}

// HasRepeatDescendant reports whether any descendant of s is a repeat node,
// used by the bag parser's retry/fairness heuristic.
func (s *CallSpec) HasRepeatDescendant() bool {
	switch s.Kind {
	case SpecRepeat:
		return true
	case SpecSeq, SpecBag, SpecChoice:
		for _, it := range s.Items {
			if it.HasRepeatDescendant() {
				return true
			}
		}
		return false
	case SpecOptional:
		return s.Item.HasRepeatDescendant()
	case SpecConditional:
		if s.Then != nil && s.Then.HasRepeatDescendant() {
			return true
		}
		return s.Else != nil && s.Else.HasRepeatDescendant()
	default:
		return false
	}
}

// FindNamedSpec searches the tree rooted at s for a node with the given
// name, used to resolve a conditional's condition sibling.
func FindNamedSpec(s *CallSpec, name string) (*CallSpec, bool) {
	if s == nil {
		return nil, false
	}
	if s.Name == name {
		return s, true
	}
	switch s.Kind {
	case SpecSeq, SpecBag, SpecChoice:
		for _, it := range s.Items {
			if found, ok := FindNamedSpec(it, name); ok {
				return found, true
			}
		}
	case SpecOptional:
		return FindNamedSpec(s.Item, name)
	case SpecRepeat:
		return FindNamedSpec(s.Item, name)
	case SpecConditional:
		if found, ok := FindNamedSpec(s.Then, name); ok {
			return found, true
		}
		return FindNamedSpec(s.Else, name)
	}
	return nil, false
}

// ArgSlot is a flattened leaf of a CallSpec tree, the primary identity of
// an argument position at runtime.
type ArgSlot struct {
	SlotID      int
	ArgSpec     *CallSpec
	ChoiceGroup *int
}

// CallDef bundles a call spec's root grammar node with its flattened slot
// list.
type CallDef struct {
	Root     *CallSpec
	ArgSlots []ArgSlot
}

// BuildArgSlots flattens a call-spec tree's arg leaves into ArgSlots in
// depth-first traversal order. Each choice node gets a fresh ChoiceGroup id,
// shared by every arg below it down to the next nested choice, which starts
// its own group.
func BuildArgSlots(root *CallSpec) []ArgSlot {
	b := &slotBuilder{}
	b.walk(root, nil)
	return b.slots
}

type slotBuilder struct {
	slots     []ArgSlot
	nextGroup int
}

func (b *slotBuilder) walk(s *CallSpec, choiceGroup *int) {
	if s == nil {
		return
	}
	switch s.Kind {
	case SpecArg:
		b.slots = append(b.slots, ArgSlot{SlotID: len(b.slots), ArgSpec: s, ChoiceGroup: choiceGroup})
	case SpecSeq, SpecBag:
		for _, it := range s.Items {
			b.walk(it, choiceGroup)
		}
	case SpecChoice:
		group := b.nextGroup
		b.nextGroup++
		for _, it := range s.Items {
			b.walk(it, &group)
		}
	case SpecOptional:
		b.walk(s.Item, choiceGroup)
	case SpecRepeat:
		b.walk(s.Item, choiceGroup)
	case SpecConditional:
		b.walk(s.Then, choiceGroup)
		b.walk(s.Else, choiceGroup)
	}
}

// SlotByID returns the arg slot with the given id, if present.
func SlotByID(slots []ArgSlot, id int) (ArgSlot, bool) {
	for _, s := range slots {
		if s.SlotID == id {
			return s, true
		}
	}
	return ArgSlot{}, false
}
