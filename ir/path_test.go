package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pathTree(t *testing.T) *Node {
	t.Helper()
	wall, _ := NewNode("movingWall", mustKey(t, "type", Word("type", "wall")))
	walls, _ := NewNode("fixedWalls", mustKey(t, "type", Word("type", "wall")))
	bnd, err := NewNodeList("boundary", wall, walls)
	if err != nil {
		t.Fatal(err)
	}
	div, _ := NewNode("divSchemes", mustKey(t, "div(phi,U)", Word("Gauss", "Gauss"), Word("linear", "linear")))
	root, err := NewDict("root", mustKey(t, "convertToMeters", FloatLiteral("v0", 0.1)), bnd, div)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestGet(t *testing.T) {
	root := pathTree(t)
	if k, ok := Get(root, "divSchemes", "div(phi,U)").(*Key); !ok || k.Len() != 2 {
		t.Fatalf("got %v", k)
	}
	if n, ok := Get(root, "boundary", "fixedWalls").(*Node); !ok || n.Name() != "fixedWalls" {
		t.Fatalf("got %v", n)
	}
	if it := Get(root, "divSchemes", "missing"); it != nil {
		t.Fatalf("expected nil, got %v", it)
	}
	if it := Get(root, "convertToMeters", "v0"); it != nil {
		t.Fatalf("expected nil below a key, got %v", it)
	}
	if it := Get(root); it != Item(root) {
		t.Fatalf("expected root")
	}
	var none *Node
	if it := Get(none, "divSchemes"); it != nil {
		t.Fatalf("expected nil from a nil node, got %v", it)
	}
}

func TestParsePath(t *testing.T) {
	for _, p := range []string{
		"$",
		"$.a.b",
		"$.a[1].b",
		"$.divSchemes.'div(phi,U)'",
		"$.'a.b'[0]",
	} {
		pp, err := ParsePath(p)
		if err != nil {
			t.Fatalf("%q: %v", p, err)
		}
		if diff := cmp.Diff(p, pp.String()); diff != "" {
			t.Errorf("%q: %s", p, diff)
		}
	}
	for _, p := range []string{"a.b", "$.", "$x", "$[a]", "$.'open"} {
		if _, err := ParsePath(p); err == nil {
			t.Errorf("%q: expected error", p)
		}
	}
}

func TestGetPath(t *testing.T) {
	root := pathTree(t)
	tests := []struct {
		path string
		want string
	}{
		{"$.divSchemes.'div(phi,U)'", "div(phi,U)"},
		{"$.boundary[1]", "fixedWalls"},
		{"$.boundary[0].type", "type"},
		{"$[0]", "convertToMeters"},
		{"$", "root"},
	}
	for _, tc := range tests {
		it, err := GetPath(root, tc.path)
		if err != nil {
			t.Fatalf("%q: %v", tc.path, err)
		}
		if it == nil || it.Name() != tc.want {
			t.Errorf("%q: got %v want %s", tc.path, it, tc.want)
		}
	}
	it, err := GetPath(root, "$.boundary[5]")
	if err != nil || it != nil {
		t.Errorf("expected nil, nil; got %v %v", it, err)
	}
}
