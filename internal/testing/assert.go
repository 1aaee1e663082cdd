// Package testing contains assertion helpers shared by the package tests.
package testing

import (
	"reflect"
	"testing"
)

// Equal asserts that values are deeply equal.
func Equal[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// True asserts that the condition holds.
func True(t testing.TB, cond bool, msg ...any) {
	t.Helper()

	if !cond {
		t.Fatal(append([]any{"expected true"}, msg...)...)
	}
}

// Panics asserts that f panics.
func Panics(t testing.TB, f func()) {
	t.Helper()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		}
	}()

	f()
}

// Nil asserts that a is nil, including typed nils.
func Nil(t testing.TB, a any) {
	t.Helper()

	if !isNil(a) {
		t.Fatalf("expected '%v' to be nil", a)
	}
}

func isNil(a any) bool {
	if a == nil {
		return true
	}

	switch reflect.TypeOf(a).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflect.ValueOf(a).IsNil()
	}

	return false
}
