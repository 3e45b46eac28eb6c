package nanolisp

import "testing"

func TestEnvFind(t *testing.T) {
	root := NewEnv(map[string]Value{"a": Number(1), "b": Number(2)})
	child := root.Extend([]string{"a", "c"}, []Value{Number(10), Number(3)})

	shouldFind(t, child, "a", Number(10))
	shouldFind(t, child, "b", Number(2))
	shouldFind(t, child, "c", Number(3))
	shouldFind(t, root, "a", Number(1))

	if _, ok := root.Find("c"); ok {
		t.Errorf("extending an env must not change its parent")
	}
}

func TestEnvNil(t *testing.T) {
	var env *Env
	if _, ok := env.Find("a"); ok {
		t.Errorf("empty env should have no bindings")
	}
	shouldFind(t, env.Define("a", Number(1)), "a", Number(1))
	if NewEnv(nil) != nil {
		t.Errorf("NewEnv(nil) should be the empty env")
	}
}

func TestEnvDefineShadows(t *testing.T) {
	first := (*Env)(nil).Define("x", Number(1))
	second := first.Define("x", Number(2))

	shouldFind(t, first, "x", Number(1))
	shouldFind(t, second, "x", Number(2))
}

func shouldFind(t *testing.T, env *Env, name string, want Value) {
	t.Helper()
	got, ok := env.Find(name)
	if !ok {
		t.Errorf("\n%s - Expected: %s\nActual: unbound\n", name, Print(want))
		return
	}
	if !Equals(got, want) {
		t.Errorf("\n%s - Expected: %s\nActual: %s\n", name, Print(want), Print(got))
	}
}
