package runtime

import "testing"

func TestStringify(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{Nil, "nil"},
		{nil, "nil"},
		{BoolValue{Val: true}, "true"},
		{BoolValue{Val: false}, "false"},
		{NumberValue{Val: 3}, "3"},
		{NumberValue{Val: -4}, "-4"},
		{NumberValue{Val: 2.5}, "2.5"},
		{NumberValue{Val: 0.1}, "0.1"},
		{StringValue{Val: "hi"}, "hi"},
	}

	for _, tc := range cases {
		if got := Stringify(tc.value); got != tc.want {
			t.Errorf("Stringify(%#v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		value Value
		want  bool
	}{
		{Nil, false},
		{BoolValue{Val: false}, false},
		{BoolValue{Val: true}, true},
		{NumberValue{Val: 0}, true},
		{StringValue{Val: ""}, true},
	}

	for _, tc := range cases {
		if got := IsTruthy(tc.value); got != tc.want {
			t.Errorf("IsTruthy(%#v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestIsEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{Nil, Nil, true},
		{Nil, BoolValue{Val: false}, false},
		{BoolValue{Val: false}, Nil, false},
		{NumberValue{Val: 1}, NumberValue{Val: 1}, true},
		{NumberValue{Val: 1}, StringValue{Val: "1"}, false},
		{StringValue{Val: "a"}, StringValue{Val: "a"}, true},
		{BoolValue{Val: true}, BoolValue{Val: true}, true},
		{BoolValue{Val: true}, NumberValue{Val: 1}, false},
	}

	for _, tc := range cases {
		if got := IsEqual(tc.a, tc.b); got != tc.want {
			t.Errorf("IsEqual(%#v, %#v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestFromLiteral(t *testing.T) {
	if FromLiteral(2.0) != (NumberValue{Val: 2}) {
		t.Errorf("number literal not converted")
	}
	if FromLiteral("s") != (StringValue{Val: "s"}) {
		t.Errorf("string literal not converted")
	}
	if FromLiteral(nil) != Nil {
		t.Errorf("nil literal not converted")
	}
}
