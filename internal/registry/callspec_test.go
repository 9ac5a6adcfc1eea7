package registry

import "testing"

func TestBuildArgSlotsAssignsChoiceGroups(t *testing.T) {
	root := Seq(
		Arg("anonNumber", true, true, "n"),
		Choice(
			Arg("timeMs", false, false, ""),
			Arg("timeSecs", false, false, ""),
		),
	)
	slots := BuildArgSlots(root)
	if len(slots) != 3 {
		t.Fatalf("want 3 slots, got %d", len(slots))
	}
	if slots[0].ChoiceGroup != nil {
		t.Fatal("first arg is outside the choice, should have no group")
	}
	if slots[1].ChoiceGroup == nil || slots[2].ChoiceGroup == nil {
		t.Fatal("args under a choice should have a group assigned")
	}
	if *slots[1].ChoiceGroup != *slots[2].ChoiceGroup {
		t.Fatal("sibling choice options should share the same group id")
	}
}

func TestBuildArgSlotsDistinctNestedChoices(t *testing.T) {
	root := Bag(
		Choice(Arg("a", false, false, ""), Arg("b", false, false, "")),
		Choice(Arg("c", false, false, ""), Arg("d", false, false, "")),
	)
	slots := BuildArgSlots(root)
	if *slots[0].ChoiceGroup == *slots[2].ChoiceGroup {
		t.Fatal("distinct choice nodes should get distinct group ids")
	}
}

func TestHasRepeatDescendant(t *testing.T) {
	withRepeat := Optional(Repeat(Arg("x", false, false, ""), 0, 3))
	if !withRepeat.HasRepeatDescendant() {
		t.Fatal("expected repeat descendant to be found")
	}
	without := Optional(Arg("x", false, false, ""))
	if without.HasRepeatDescendant() {
		t.Fatal("expected no repeat descendant")
	}
}

func TestFindNamedSpec(t *testing.T) {
	named := Arg("n", true, true, "n")
	root := Bag(named, Conditional("n", Optional(Arg("timeMs", false, false, "")), nil))
	found, ok := FindNamedSpec(root, "n")
	if !ok || found != named {
		t.Fatal("expected to find the named arg spec")
	}
}
