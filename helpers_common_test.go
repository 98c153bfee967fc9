package hbetl

import "testing"

func TestIfHelper(t *testing.T) {
	tag := TagModel{Name: "if", RawOptions: "user", BlockContents: "<p>Hi</p>"}
	out, err := ifHelper(tag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<%= cond do %>\n<% @user -> %><p>Hi</p><% true -> %><% nil %>\n<% end %>\n"
	if out != want {
		t.Errorf("ifHelper = %q, want %q", out, want)
	}
}

func TestIfHelperRequiresOptions(t *testing.T) {
	_, err := ifHelper(TagModel{Name: "if"})
	if err == nil {
		t.Fatal("expected an error when if has no options")
	}
}

func TestUnlessHelper(t *testing.T) {
	tag := TagModel{Name: "unless", RawOptions: "user.active", BlockContents: "<p>X</p>"}
	out, err := unlessHelper(tag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<%= cond do %>\n<% !get_in(@user, [:active]) -> %><p>X</p><% end %>\n"
	if out != want {
		t.Errorf("unlessHelper = %q, want %q", out, want)
	}
}

func TestEachHelper(t *testing.T) {
	tag := TagModel{Name: "each", RawOptions: "items", BlockContents: "<li></li>"}
	out, err := eachHelper(tag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<%= for item <- @items do %><li></li><% end %>\n"
	if out != want {
		t.Errorf("eachHelper = %q, want %q", out, want)
	}
}

func TestRawHelperPassesThroughBlockContents(t *testing.T) {
	out, err := rawHelper(TagModel{BlockContents: "<%= @whatever %>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "<%= @whatever %>" {
		t.Errorf("rawHelper = %q", out)
	}
}

func TestElseHelperAlwaysEmitsCatchAll(t *testing.T) {
	out, err := elseHelper(TagModel{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "<% true -> %>" {
		t.Errorf("elseHelper = %q", out)
	}
}

func TestIndexAndKeyHelpers(t *testing.T) {
	if out, _ := indexHelper(TagModel{}); out != "<%= @index %>" {
		t.Errorf("indexHelper = %q", out)
	}
	if out, _ := keyHelper(TagModel{}); out != "<%= @key %>" {
		t.Errorf("keyHelper = %q", out)
	}
}

func TestLogHelperProducesNoOutputButLogs(t *testing.T) {
	spy := &spyLogger{}
	fn := newLogHelper(spy)
	out, err := fn(TagModel{RawOptions: "checkpoint reached"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("log helper output = %q, want empty", out)
	}
	if len(spy.messages) != 1 || spy.messages[0] != "checkpoint reached" {
		t.Errorf("spy.messages = %v", spy.messages)
	}
}

func TestLogHelperDefaultsToNopLoggerWhenNil(t *testing.T) {
	fn := newLogHelper(nil)
	if _, err := fn(TagModel{RawOptions: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
