package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/gddoc/gddoc"
	main "github.com/gddoc/gddoc/cmd/gddoc"
	"github.com/gddoc/gddoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdList(t *testing.T) {
	t.Parallel()

	keys := []string{"Node", "Node.add_child", "Object", "clampf"}

	newDeps := func(listErr error) *main.Dependencies {
		return &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Lister: &mock.MarkdownStore{ListSymbolsFn: func() ([]string, error) {
				return keys, listErr
			}},
		}
	}

	t.Run("lists all cached symbols", func(t *testing.T) {
		t.Parallel()

		deps := newDeps(nil)

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Node\nNode.add_child\nObject\nclampf\n", deps.Stdout.(*bytes.Buffer).String())
	})

	t.Run("filters by prefix", func(t *testing.T) {
		t.Parallel()

		deps := newDeps(nil)

		cmd := &main.ListCmd{Prefix: "Node"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Node\nNode.add_child\n", deps.Stdout.(*bytes.Buffer).String())
	})

	t.Run("empty cache prints a hint", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Lister: &mock.MarkdownStore{ListSymbolsFn: func() ([]string, error) {
				return nil, nil
			}},
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, deps.Stdout.(*bytes.Buffer).String(), "gddoc update")
	})

	t.Run("propagates listing errors", func(t *testing.T) {
		t.Parallel()

		deps := newDeps(gddoc.Errorf(gddoc.EINTERNAL, "disk on fire"))

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
	})
}
