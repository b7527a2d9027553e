package remember

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run hosts the stage on channels for one pipeline run.
//
// Run consumes in until it is closed, writing every file into the bound
// cache, then flushes the cache to out and closes out. Cancelling ctx
// aborts the run without flushing; files already cached stay cached, so
// the next run over the same cache still replays them.
//
// Run closes out on every return path.
func (s *Stage) Run(ctx context.Context, in <-chan File, out chan<- File) error {
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-in:
			if !ok {
				return s.Flush(func(f File) error {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case out <- f:
						return nil
					}
				})
			}
			if err := s.Write(f); err != nil {
				return err
			}
		}
	}
}

// Pipe runs stages as a chain between src and sink for one pipeline run.
//
// Each stage consumes the previous stage's output; sink receives the
// final stage's flush. Pipe blocks until the chain drains and returns the
// first error, cancelling the remaining stages. With no stages, src
// drains straight into sink.
func Pipe(ctx context.Context, src <-chan File, sink func(File) error, stages ...*Stage) error {
	g, ctx := errgroup.WithContext(ctx)

	in := src
	for _, s := range stages {
		stageIn, stageOut := in, make(chan File)
		g.Go(func() error {
			return s.Run(ctx, stageIn, stageOut)
		})
		in = stageOut
	}

	final := in
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case f, ok := <-final:
				if !ok {
					return nil
				}
				if err := sink(f); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}
