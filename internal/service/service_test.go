package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/operator/actions"
)

// fakeProcessor records queued actions instead of running them. perform, when
// set, stands in for the action's effect.
type fakeProcessor struct {
	processed []actions.IAction
	perform   func(action actions.IAction) error
}

func (f *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	f.processed = append(f.processed, action)
	if f.perform != nil {
		return f.perform(action)
	}
	return nil
}

func (f *fakeProcessor) last() actions.IAction {
	if len(f.processed) == 0 {
		return nil
	}
	return f.processed[len(f.processed)-1]
}
