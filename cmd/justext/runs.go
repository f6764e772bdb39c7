package main

import (
	"fmt"

	"github.com/justext-go/justext"
)

// RunsCmd inspects past classification runs recorded in the SQLite-backed
// run-history store.
type RunsCmd struct {
	List RunsListCmd `cmd:"" help:"List recent runs."`
	Show RunsShowCmd `cmd:"" help:"Show a single run by ID."`
}

// RunsListCmd lists recent runs, most recent first.
type RunsListCmd struct {
	Limit  int `default:"20" help:"Maximum number of runs to list."`
	Offset int `help:"Number of runs to skip."`
}

// Run executes the runs list command.
func (c *RunsListCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, c.Limit, c.Offset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded yet. Use 'justext classify --save' to record one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  good=%d near_good=%d short=%d bad=%d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Summary.Good, r.Summary.NearGood, r.Summary.Short, r.Summary.Bad, r.Source)
	}
	return nil
}

// RunsShowCmd shows a single run's full detail.
type RunsShowCmd struct {
	ID string `arg:"" help:"Run ID."`
}

// Run executes the runs show command.
func (c *RunsShowCmd) Run(deps *Dependencies) error {
	r, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "id:           %s\n", r.ID)
	fmt.Fprintf(deps.Stdout, "source:       %s\n", r.Source)
	fmt.Fprintf(deps.Stdout, "content_hash: %s\n", r.ContentHash)
	fmt.Fprintf(deps.Stdout, "created_at:   %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(deps.Stdout, "good:         %d\n", r.Summary.Good)
	fmt.Fprintf(deps.Stdout, "near_good:    %d\n", r.Summary.NearGood)
	fmt.Fprintf(deps.Stdout, "short:        %d\n", r.Summary.Short)
	fmt.Fprintf(deps.Stdout, "bad:          %d\n", r.Summary.Bad)
	return nil
}
