package registry

import (
	"testing"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
)

func TestFindBestPathSameTypeIsEmptyPath(t *testing.T) {
	r := NewConversionRegistry()
	path, ok := r.FindBestPath(mctile.TypeNumber, mctile.TypeNumber, 0)
	if !ok || path != nil {
		t.Fatalf("want empty path, got %v ok=%v", path, ok)
	}
}

func TestFindBestPathPicksCheaperRoute(t *testing.T) {
	r := NewConversionRegistry()
	r.Register(Conversion{From: "A", To: "B", Cost: 5})
	r.Register(Conversion{From: "A", To: "C", Cost: 1})
	r.Register(Conversion{From: "C", To: "B", Cost: 1})

	path, ok := r.FindBestPath("A", "B", 0)
	if !ok {
		t.Fatal("expected a path")
	}
	total := 0
	for _, c := range path {
		total += c.Cost
	}
	if total != 2 {
		t.Fatalf("want cost 2 via A->C->B, got cost %d path=%v", total, path)
	}
}

func TestFindBestPathRespectsMaxDepth(t *testing.T) {
	r := NewConversionRegistry()
	r.Register(Conversion{From: "A", To: "C", Cost: 1})
	r.Register(Conversion{From: "C", To: "B", Cost: 1})

	if _, ok := r.FindBestPath("A", "B", 1); ok {
		t.Fatal("two-hop path should be pruned at max_depth=1")
	}
	if _, ok := r.FindBestPath("A", "B", 2); !ok {
		t.Fatal("two-hop path should succeed at max_depth=2")
	}
}

func TestFindBestPathUnreachable(t *testing.T) {
	r := NewConversionRegistry()
	if _, ok := r.FindBestPath("A", "Z", 0); ok {
		t.Fatal("unregistered target should be unreachable")
	}
}
