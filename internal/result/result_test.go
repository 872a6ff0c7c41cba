package result

import (
	"errors"
	"testing"
)

func TestCombine_PreservesOrder(t *testing.T) {
	a := Of([]string{"a1", "a2"}, NewFailure(ReasonParsing, "fa"))
	b := Of([]string{"b1"}, NewFailure(ReasonParsing, "fb1"), NewFailure(ReasonError, "fb2"))

	c := a.Combine(b)
	wantValues := []string{"a1", "a2", "b1"}
	if len(c.Values) != len(wantValues) {
		t.Fatalf("values: %v", c.Values)
	}
	for i, v := range wantValues {
		if c.Values[i] != v {
			t.Errorf("value %d: want %q got %q", i, v, c.Values[i])
		}
	}
	if len(c.Failures) != 3 || c.Failures[0].Msg != "fa" || c.Failures[2].Msg != "fb2" {
		t.Errorf("failures: %v", c.Failures)
	}
}

func TestCombine_Associative(t *testing.T) {
	a := Of([]string{"a"}, NewFailure(ReasonParsing, "fa"))
	b := Of([]string{"b"})
	c := Of([]string{"c"}, NewFailure(ReasonParsing, "fc"))

	left := a.Combine(b).Combine(c)
	right := a.Combine(b.Combine(c))
	if len(left.Values) != len(right.Values) || len(left.Failures) != len(right.Failures) {
		t.Fatalf("left %v / right %v", left, right)
	}
	for i := range left.Values {
		if left.Values[i] != right.Values[i] {
			t.Errorf("value %d differs", i)
		}
	}
	for i := range left.Failures {
		if left.Failures[i].Msg != right.Failures[i].Msg {
			t.Errorf("failure %d differs", i)
		}
	}
}

func TestCombine_DoesNotMutateReceiver(t *testing.T) {
	a := Of([]string{"a"})
	b := Of([]string{"b"})
	_ = a.Combine(b)
	if len(a.Values) != 1 || len(b.Values) != 1 {
		t.Fatalf("inputs mutated: a=%v b=%v", a.Values, b.Values)
	}
}

func TestFailureItem_Error(t *testing.T) {
	f := NewRowFailure(ReasonParsing, 7, "bad value %q", "x")
	if got := f.Error(); got != `parsing (line 7): bad value "x"` {
		t.Errorf("got %q", got)
	}
	g := NewFailure(ReasonError, "boom")
	if got := g.Error(); got != "error: boom" {
		t.Errorf("got %q", got)
	}
}

func TestFailureItem_Cause(t *testing.T) {
	cause := errors.New("root")
	f := NewFailure(ReasonParsing, "wrapper").WithCause(cause)
	if !errors.Is(f, cause) {
		t.Error("cause not unwrapped")
	}
}

func TestFailed(t *testing.T) {
	r := Failed[int](NewFailure(ReasonFormat, "nope"))
	if len(r.Values) != 0 || !r.HasFailures() {
		t.Fatalf("got %+v", r)
	}
}
