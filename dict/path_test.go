package dict_test

import (
	"errors"
	"testing"

	"github.com/denis-mludek/spacelift/dict"
)

func makeNested() *dict.Dict {
	return dict.New(
		dict.Entry{Key: "user", Value: dict.New(
			dict.Entry{Key: "name", Value: "Alice"},
			dict.Entry{Key: "address", Value: dict.New(
				dict.Entry{Key: "city", Value: "London"},
				dict.Entry{Key: "country", Value: "UK"},
			)},
		)},
		dict.Entry{Key: "score", Value: 42},
	)
}

func TestGetPath(t *testing.T) {
	d := makeNested()
	if v, ok := d.GetPath("user.name"); !ok || v != "Alice" {
		t.Fatalf("GetPath user.name = %v, %v; want Alice, true", v, ok)
	}
	if v, ok := d.GetPath("user.address.city"); !ok || v != "London" {
		t.Fatalf("GetPath city = %v, %v; want London, true", v, ok)
	}
	if _, ok := d.GetPath("user.missing"); ok {
		t.Fatal("GetPath missing should be false")
	}
	if _, ok := d.GetPath("score.deeper"); ok {
		t.Fatal("GetPath through a scalar should be false")
	}
	if _, ok := d.GetPath(""); ok {
		t.Fatal("GetPath empty should be false")
	}
}

func TestGetPathThroughPlainMap(t *testing.T) {
	d := dict.New(dict.Entry{Key: "a", Value: map[string]any{"b": 1}})
	if v, ok := d.GetPath("a.b"); !ok || v != 1 {
		t.Fatalf("GetPath a.b = %v, %v; want 1, true", v, ok)
	}
}

func TestHasPath(t *testing.T) {
	d := makeNested()
	if !d.HasPath("user.address") || d.HasPath("user.age") {
		t.Fatal("HasPath failed")
	}
}

func TestSetPathDoesNotMutate(t *testing.T) {
	d := makeNested()
	out, err := d.SetPath("user.address.zip", "EC1")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.GetPath("user.address.zip"); v != "EC1" {
		t.Fatalf("SetPath zip = %v; want EC1", v)
	}
	if d.HasPath("user.address.zip") {
		t.Fatal("SetPath mutated the receiver")
	}
	if v, _ := out.GetPath("user.address.city"); v != "London" {
		t.Fatal("SetPath lost a sibling")
	}
}

func TestSetPathCreatesAndOverwrites(t *testing.T) {
	d := dict.New().Set("a", 1)
	out, err := d.SetPath("a.b.c", 42)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.GetPath("a.b.c"); v != 42 {
		t.Fatalf("SetPath a.b.c = %v; want 42", v)
	}
}

func TestSetPathInvalid(t *testing.T) {
	for _, p := range []string{"", "a..b", ".a", "a."} {
		if _, err := dict.New().SetPath(p, 1); !errors.Is(err, dict.ErrInvalidPath) {
			t.Fatalf("SetPath(%q) err = %v; want ErrInvalidPath", p, err)
		}
	}
}

func TestForgetPath(t *testing.T) {
	d := makeNested()
	out := d.ForgetPath("user.address.city")
	if out.HasPath("user.address.city") {
		t.Fatal("ForgetPath did not remove the key")
	}
	if !d.HasPath("user.address.city") {
		t.Fatal("ForgetPath mutated the receiver")
	}
	if !out.HasPath("user.address.country") {
		t.Fatal("ForgetPath removed a sibling")
	}
}

func TestDot(t *testing.T) {
	flat := makeNested().Dot()
	assertKeys(t, flat, "user.name", "user.address.city", "user.address.country", "score")
	if v, _ := flat.Get("user.address.city"); v != "London" {
		t.Fatalf("Dot city = %v; want London", v)
	}
}

func TestUndot(t *testing.T) {
	flat := dict.New(
		dict.Entry{Key: "a.b", Value: 1},
		dict.Entry{Key: "a.c", Value: 2},
		dict.Entry{Key: "d", Value: 3},
		dict.Entry{Key: "e.f.g", Value: 4},
	)
	nested, err := dict.Undot(flat)
	if err != nil {
		t.Fatal(err)
	}
	assertKeys(t, nested, "a", "d", "e")
	if v, _ := nested.GetPath("e.f.g"); v != 4 {
		t.Fatalf("Undot e.f.g = %v; want 4", v)
	}
	if _, err := dict.Undot(dict.New().Set("a..b", 1)); !errors.Is(err, dict.ErrInvalidPath) {
		t.Fatalf("Undot invalid err = %v", err)
	}
}
