package report

import (
	"errors"
	"fmt"

	"github.com/homier/hashtab"
	"github.com/homier/hashtab/internal/dataset"
)

var ErrSelfCheck = errors.New("self-check failed")

// SelfCheck runs smoke scenarios against fresh containers and reports the
// first one that doesn't hold.
func SelfCheck() error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"set", checkSet},
		{"map", checkMap},
		{"isbn", checkISBN},
	}

	for _, c := range checks {
		if err := c.fn(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSelfCheck, c.name, err)
		}
	}

	return nil
}

func checkSet() error {
	ps := hashtab.NewSet(10)

	for _, k := range []string{"hello", "world"} {
		if _, err := ps.Put(k); err != nil {
			return err
		}
	}

	for k, want := range map[string]bool{"hello": true, "world": true, "nonexistent": false} {
		if got := ps.Contains(k); got != want {
			return fmt.Errorf("contains(%q) = %t, want %t", k, got, want)
		}
	}

	return nil
}

func checkMap() error {
	cm := hashtab.NewMap(10)
	cm.Add(123, "test value")
	cm.Add(456, "another value")

	for k, want := range map[int64]string{123: "test value", 456: "another value"} {
		if got, ok := cm.Get(k); !ok || got != want {
			return fmt.Errorf("get(%d) = %q, %t, want %q", k, got, ok, want)
		}
	}

	if got, ok := cm.Get(789); ok {
		return fmt.Errorf("get(789) = %q, want absent", got)
	}

	return nil
}

func checkISBN() error {
	if got := dataset.NormalizeISBN("0-19-853453-9"); got != 198534539 {
		return fmt.Errorf("normalize(%q) = %d", "0-19-853453-9", got)
	}

	if got := dataset.NormalizeISBN("abc"); got != 'a'+'b'+'c' {
		return fmt.Errorf("normalize(%q) = %d", "abc", got)
	}

	return nil
}
