// Package committer collects Spanner mutations into a plan and applies them.
//
// Repositories return mutations instead of writing. A caller gathers them in
// a CommitPlan and hands the plan to a Committer:
//
//	plan := committer.NewPlan()
//	plan.Add(beverageRepo.ReplaceDatasetMut(dataset))
//	for i, item := range items {
//	    plan.Add(beverageRepo.InsertMut(dataset, int64(i), item))
//	}
//	applied, err := c.ApplyInBatches(ctx, plan, batchSize)
//
// A non-positive batch size commits the whole plan in one transaction. Larger
// plans are split in order and are only atomic per batch.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is an ordered list of mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Batches splits the plan into consecutive chunks of at most size mutations.
// size <= 0 returns the whole plan as one batch.
func (cp *CommitPlan) Batches(size int) [][]*spanner.Mutation {
	if cp.IsEmpty() {
		return nil
	}
	if size <= 0 || size >= len(cp.mutations) {
		return [][]*spanner.Mutation{cp.mutations}
	}

	batches := make([][]*spanner.Mutation, 0, (len(cp.mutations)+size-1)/size)
	for start := 0; start < len(cp.mutations); start += size {
		end := start + size
		if end > len(cp.mutations) {
			end = len(cp.mutations)
		}
		batches = append(batches, cp.mutations[start:end])
	}
	return batches
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// ApplyInBatches commits the plan batch by batch and stops at the first
// failure. It returns the number of mutations committed.
func (c *Committer) ApplyInBatches(ctx context.Context, plan *CommitPlan, batchSize int) (int, error) {
	applied := 0
	for i, batch := range plan.Batches(batchSize) {
		if _, err := c.client.Apply(ctx, batch); err != nil {
			return applied, fmt.Errorf("failed to apply batch %d: %w", i, err)
		}
		applied += len(batch)
	}
	return applied, nil
}
