package remember

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/meigma/remember/internal/testutil"
)

func sourceChannel(files ...*testutil.MemFile) chan File {
	ch := make(chan File, len(files))
	for _, f := range files {
		ch <- f
	}
	close(ch)
	return ch
}

func TestStageRun(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry()
	stage := New("scripts", WithRegistry(reg))

	in := sourceChannel(
		testutil.NewMemFile("a.js", []byte("a")),
		testutil.NewMemFile("b.js", []byte("b")),
	)
	out := make(chan File)

	var g errgroup.Group
	g.Go(func() error {
		return stage.Run(context.Background(), in, out)
	})

	var paths []string
	for f := range out {
		paths = append(paths, f.Path())
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, []string{"a.js", "b.js"}, paths)
}

func TestStageRunCancelSkipsFlush(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry()
	stage := New("scripts", WithRegistry(reg))

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan File)
	out := make(chan File)

	var g errgroup.Group
	g.Go(func() error {
		return stage.Run(ctx, in, out)
	})

	// The unbuffered send returns once the stage has taken the file;
	// cancel before end-of-input so the run aborts without flushing.
	in <- testutil.NewMemFile("a.js", []byte("a"))
	cancel()

	var flushed []File
	for f := range out {
		flushed = append(flushed, f)
	}
	assert.ErrorIs(t, g.Wait(), context.Canceled)
	assert.Empty(t, flushed, "an aborted run never flushes")

	// The partial run's file stays cached for the next run.
	out2 := runStage(t, reg, "scripts")
	require.Len(t, out2, 1)
	assert.Equal(t, "a.js", out2[0].Path())
}

func TestPipeSingleStage(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry()
	src := sourceChannel(
		testutil.NewMemFile("a.js", []byte("a")),
		testutil.NewMemFile("b.js", []byte("b")),
	)

	var paths []string
	err := Pipe(context.Background(), src, func(f File) error {
		paths = append(paths, f.Path())
		return nil
	}, New("scripts", WithRegistry(reg)))

	require.NoError(t, err)
	assert.Equal(t, []string{"a.js", "b.js"}, paths)
}

func TestPipeChainedStages(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry()

	// Warm the downstream cache from an earlier run.
	runStage(t, reg, "all", testutil.NewMemFile("old.js", []byte("old")))

	src := sourceChannel(testutil.NewMemFile("new.js", []byte("new")))

	var paths []string
	err := Pipe(context.Background(), src, func(f File) error {
		paths = append(paths, f.Path())
		return nil
	},
		New("changed", WithRegistry(reg)),
		New("all", WithRegistry(reg)),
	)

	require.NoError(t, err)
	// The second stage replays its prior run's file plus everything the
	// first stage flushed into it.
	assert.Equal(t, []string{"old.js", "new.js"}, paths)
}

func TestPipeNoStages(t *testing.T) {
	t.Parallel()

	src := sourceChannel(testutil.NewMemFile("a.js", []byte("a")))

	var n int
	err := Pipe(context.Background(), src, func(File) error {
		n++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPipeSinkError(t *testing.T) {
	t.Parallel()

	reg, _ := newTestRegistry()
	src := sourceChannel(
		testutil.NewMemFile("a.js", []byte("a")),
		testutil.NewMemFile("b.js", []byte("b")),
	)

	wantErr := assert.AnError
	err := Pipe(context.Background(), src, func(File) error {
		return wantErr
	}, New("scripts", WithRegistry(reg)))

	require.ErrorIs(t, err, wantErr)
}
