package fileio

import (
	"errors"
	"io/fs"
	"testing"
)

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{fs.ErrNotExist, KindNotFound},
		{fs.ErrPermission, KindPermission},
		{errors.New("disk on fire"), KindOther},
	}
	for _, tc := range cases {
		got := classify("/tmp/x", tc.err)
		if got.Kind != tc.want {
			t.Fatalf("classify(%v): expected kind %v, got %v", tc.err, tc.want, got.Kind)
		}
		if !errors.Is(got, tc.err) {
			t.Fatalf("expected classified error to wrap %v", tc.err)
		}
	}
}

func TestIOErrorMessageUsesKind(t *testing.T) {
	err := &IOError{Kind: KindNotFound, Path: "/tmp/a.txt"}
	want := "not found: /tmp/a.txt"
	if got := err.Error(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
