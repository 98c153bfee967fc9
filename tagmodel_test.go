package hbetl

import "testing"

func TestTagModelArg(t *testing.T) {
	tag := TagModel{Args: []ArgModel{{Value: "a"}, {Value: "b", Quoted: true}}}

	if a, ok := tag.Arg(0); !ok || a.Value != "a" {
		t.Errorf("Arg(0) = %+v, %v; want {a false}, true", a, ok)
	}
	if b, ok := tag.Arg(1); !ok || b.Value != "b" || !b.Quoted {
		t.Errorf("Arg(1) = %+v, %v; want {b true}, true", b, ok)
	}
	if _, ok := tag.Arg(2); ok {
		t.Error("Arg(2) should be out of range")
	}
	if _, ok := tag.Arg(-1); ok {
		t.Error("Arg(-1) should be out of range")
	}
}

func TestTagModelKwarg(t *testing.T) {
	tag := TagModel{Kwargs: map[string]ArgModel{"name": {Value: "Customer", Quoted: true}}}

	if v, ok := tag.Kwarg("name"); !ok || v.Value != "Customer" {
		t.Errorf("Kwarg(name) = %+v, %v; want {Customer true}, true", v, ok)
	}
	if _, ok := tag.Kwarg("missing"); ok {
		t.Error("Kwarg(missing) should not be found")
	}
}
