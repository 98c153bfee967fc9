package hbetl

import "testing"

func TestComparisonBlockHelper(t *testing.T) {
	tag := TagModel{
		Name:          "equals",
		Args:          []ArgModel{{Value: "status"}, {Value: "active", Quoted: true}},
		BlockContents: "<p>Active</p>",
	}
	out, err := comparisonBlockHelper("==")(tag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<%= cond do %>` + "\n" + `<% @status == "active" -> %><p>Active</p><% true -> %><% nil %>` + "\n" + `<% end %>` + "\n"
	if out != want {
		t.Errorf("comparisonBlockHelper = %q, want %q", out, want)
	}
}

func TestComparisonBlockHelperMissingOperandErrors(t *testing.T) {
	_, err := comparisonBlockHelper("==")(TagModel{Name: "equals", Args: []ArgModel{{Value: "status"}}})
	if err == nil {
		t.Fatal("expected an error when the second operand is missing")
	}
}

func TestElseComparisonHelperEmitsBareClause(t *testing.T) {
	tag := TagModel{Name: "else equals", Args: []ArgModel{{Value: "status"}, {Value: "pending", Quoted: true}}}
	out, err := elseComparisonHelper("==")(tag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<% @status == "pending" -> %>`
	if out != want {
		t.Errorf("elseComparisonHelper = %q, want %q", out, want)
	}
}

func TestElseUnaryHelperIfAndUnless(t *testing.T) {
	out, err := elseUnaryHelper(false)(TagModel{Name: "else if", RawOptions: "user.vip"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "<% get_in(@user, [:vip]) -> %>" {
		t.Errorf("else if = %q", out)
	}

	out, err = elseUnaryHelper(true)(TagModel{Name: "else unless", RawOptions: "user.vip"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "<% !get_in(@user, [:vip]) -> %>" {
		t.Errorf("else unless = %q", out)
	}
}

func TestElseUnaryHelperRequiresOptions(t *testing.T) {
	_, err := elseUnaryHelper(false)(TagModel{Name: "else if"})
	if err == nil {
		t.Fatal("expected an error when else if has no options")
	}
}

func TestInsertHelperWithFallback(t *testing.T) {
	tag := TagModel{Name: "insert", Args: []ArgModel{{Value: "name"}, {Value: "Customer", Quoted: true}}}
	out, err := insertHelper(tag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<%= @name || "Customer" %>`
	if out != want {
		t.Errorf("insertHelper = %q, want %q", out, want)
	}
}

func TestInsertHelperWithoutFallback(t *testing.T) {
	tag := TagModel{Name: "insert", Args: []ArgModel{{Value: "name"}}}
	out, err := insertHelper(tag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "<%= @name %>" {
		t.Errorf("insertHelper = %q, want <%%= @name %%>", out)
	}
}

func TestInsertHelperRequiresName(t *testing.T) {
	_, err := insertHelper(TagModel{Name: "insert"})
	if err == nil {
		t.Fatal("expected an error when insert has no arguments")
	}
}
