package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"corebrowser/core/option"
)

// intOption is a minimal option.Type over int, standing in for
// css/style's keywordOf in these package-level tests.
type intOption struct {
	val int
	set bool
}

func someInt(x int) intOption { return intOption{val: x, set: true} }
func noInt() intOption        { return intOption{} }

func (o intOption) Match(choices interface{}) (interface{}, error) {
	return option.Match(o, choices)
}

func (o intOption) Equals(other interface{}) bool {
	i, ok := other.(int)
	return ok && o.set && o.val == i
}

func (o intOption) IsNone() bool {
	return !o.set
}

func TestOptionOfMatchesConcreteValue(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	x := someInt(42)
	y, err := x.Match(option.Of{
		option.None: 7,
		42:          99,
		option.Some: nonsense,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y.(int) != 99 {
		t.Errorf("expected SomeInt(42) to match to 99, is %v", y)
	}
}

func TestOptionOfFallsBackToSome(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	x := someInt(1)
	y, err := x.Match(option.Of{
		option.None: 7,
		option.Some: stringify,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y.(string) != "Value = {1 true}" {
		t.Errorf("expected fallback to option.Some, is %v", y)
	}
}

func TestOptionOfMatchesNone(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	x := noInt()
	y, err := x.Match(option.Of{
		option.None: "No Value",
		option.Some: stringify,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y.(string) != "No Value" {
		t.Errorf("expected None to match to No Value, is %v", y)
	}
}

func TestOptionOfRunsErrorThunkWhenSomeThunkFails(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	x := someInt(42)
	y, err := x.Match(option.Of{
		option.None: "No Value",
		option.Some: nonsense,
		option.Error: stringify,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y != "Value = {42 true}" {
		t.Errorf("expected error thunk to run, is %v", y)
	}
}

func TestOptionUnknownChoicesKindReturnsErrNoSuchMatchPattern(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	_, err := option.Match(someInt(1), "not an Of map")
	if !errors.Is(err, option.ErrNoSuchMatchPattern) {
		t.Errorf("expected ErrNoSuchMatchPattern, got %v", err)
	}
}

// ---------------------------------------------------------------------------

func nonsense(x interface{}) (interface{}, error) {
	return nil, errors.New("ERROR")
}

func stringify(x interface{}) (interface{}, error) {
	return fmt.Sprintf("Value = %v", x), nil
}
