package driver

import "golang.org/x/sync/errgroup"

// Job is one independent driver invocation RunBatch runs concurrently: it
// receives no shared state and returns its own result opaquely, since
// RunReach/RunCovReach/RunConcur19/RunNDFS/RunCouvSCC/RunBisim all return
// different result types.
type Job func() (any, error)

// RunBatch runs jobs concurrently via golang.org/x/sync/errgroup, each job
// building its own zg.ZG/RefZG/VCG and so its own allocator. It returns every job's
// result in the same order jobs was given. Every job is started and
// RunBatch waits for all of them; a failing job cancels none of the
// others, and only the first error is returned (with no results).
func RunBatch(jobs ...Job) ([]any, error) {
	results := make([]any, len(jobs))
	var g errgroup.Group
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			r, err := job()
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
