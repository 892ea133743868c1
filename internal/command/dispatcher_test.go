package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/jeanpaul/attache/internal/apperr"
)

func specFor(t *testing.T, op string) Spec {
	t.Helper()
	for _, s := range Table() {
		if s.Op == op {
			return s
		}
	}
	t.Fatalf("no spec for %s", op)
	return Spec{}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		op      string
		rest    string
		want    []string
		wantErr bool
	}{
		// zero-argument
		{OpListContacts, "", nil, false},
		{OpListContacts, "trailing junk", nil, true},

		// one argument, embedded spaces allowed
		{OpShowContact, "Ann Marie", []string{"Ann Marie"}, false},
		{OpShowContact, "", nil, true},

		// two arguments, split on the first whitespace run
		{OpAddPhone, "Ann 0991234567", []string{"Ann", "0991234567"}, false},
		{OpAddPhone, "Ann    0991234567", []string{"Ann", "0991234567"}, false},
		{OpAddPhone, "Ann", nil, true},
		{OpAddPhone, "", nil, true},

		// three arguments
		{OpEditPhone, "Ann 0991234567 0997654321", []string{"Ann", "0991234567", "0997654321"}, false},
		{OpEditPhone, "Ann 0991234567", nil, true},

		// one required token plus free remainder
		{OpAddNote, "Groceries milk, eggs and bread", []string{"Groceries", "milk, eggs and bread"}, false},
		{OpAddNote, "Groceries", []string{"Groceries", ""}, false},
		{OpAddNote, "", nil, true},
	}
	for _, tt := range tests {
		spec := specFor(t, tt.op)
		got, err := SplitArgs(spec, tt.rest)
		if tt.wantErr {
			if !apperr.Is(err, apperr.KindArity) {
				t.Errorf("SplitArgs(%s, %q): got %v, want arity error", tt.op, tt.rest, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SplitArgs(%s, %q): %v", tt.op, tt.rest, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("SplitArgs(%s, %q) = %v, want %v", tt.op, tt.rest, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitArgs(%s, %q)[%d] = %q, want %q", tt.op, tt.rest, i, got[i], tt.want[i])
			}
		}
	}
}

func TestDispatchConvertsErrorsToMessages(t *testing.T) {
	d := NewDispatcher(newTestResolver())
	d.Register(OpShowContact, func(args []string) (string, error) {
		return "", apperr.NotFoundf("contact %s not found", args[0])
	})

	resp := d.Dispatch("show-contact Ghost")
	if !resp.IsError {
		t.Fatal("expected an error response")
	}
	if !strings.Contains(resp.Message, "not found") {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Op != OpShowContact {
		t.Errorf("op = %q", resp.Op)
	}
}

func TestDispatchPrefixesUnclassifiedErrors(t *testing.T) {
	d := NewDispatcher(newTestResolver())
	d.Register(OpSave, func(args []string) (string, error) {
		return "", errors.New("disk full")
	})

	resp := d.Dispatch("save")
	if !resp.IsError {
		t.Fatal("expected an error response")
	}
	if resp.Message != "error: disk full" {
		t.Errorf("message = %q, want the raw error behind a plain prefix", resp.Message)
	}
}

func TestDispatchArityFailure(t *testing.T) {
	d := NewDispatcher(newTestResolver())
	called := false
	d.Register(OpAddPhone, func(args []string) (string, error) {
		called = true
		return "ok", nil
	})

	resp := d.Dispatch("add-phone Ann")
	if !resp.IsError {
		t.Fatal("expected an arity error response")
	}
	if called {
		t.Error("handler must not run on arity failure")
	}
	if !strings.Contains(resp.Message, "usage:") {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestDispatchNoMatch(t *testing.T) {
	d := NewDispatcher(newTestResolver())
	resp := d.Dispatch("zzzz qqqq")
	if !resp.IsError {
		t.Fatal("expected an error response")
	}
}

func TestDispatchRecoversPanics(t *testing.T) {
	d := NewDispatcher(newTestResolver())
	d.Register(OpSave, func(args []string) (string, error) {
		panic(errors.New("boom"))
	})
	resp := d.Dispatch("save")
	if !resp.IsError || !strings.Contains(resp.Message, "internal error") {
		t.Errorf("panic must become an error message, got %+v", resp)
	}
}

func TestDispatchInferredRunsBare(t *testing.T) {
	d := NewDispatcher(newTestResolver())
	var got []string
	d.Register(OpListContacts, func(args []string) (string, error) {
		got = args
		return "three contacts", nil
	})
	d.Register(OpAddContact, func(args []string) (string, error) {
		t.Error("prose must not become arguments")
		return "", nil
	})

	resp := d.Dispatch("show me all my contacts")
	if resp.IsError {
		t.Fatalf("inferred zero-arg command failed: %s", resp.Message)
	}
	if len(got) != 0 {
		t.Errorf("args = %v, want none", got)
	}

	// A command that needs arguments answers with its usage instead of
	// guessing a name out of the prose.
	resp = d.Dispatch("please add a new contact for me")
	if !resp.IsError || !strings.Contains(resp.Message, "usage:") {
		t.Errorf("got %+v, want a usage response", resp)
	}
	if !resp.Inferred || resp.Op != OpAddContact {
		t.Errorf("response should carry the inferred op, got %+v", resp)
	}
}

func TestDispatchHappyPath(t *testing.T) {
	d := NewDispatcher(newTestResolver())
	d.Register(OpAddContact, func(args []string) (string, error) {
		return "added " + args[0], nil
	})

	resp := d.Dispatch("add contact Oleh 0991234567")
	if resp.IsError {
		t.Fatalf("unexpected error: %s", resp.Message)
	}
	if resp.Message != "added Oleh" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Inferred {
		t.Error("exact match should not be inferred")
	}
}
