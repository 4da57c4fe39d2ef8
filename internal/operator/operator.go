package operator

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// ErrStopped is returned for actions submitted after the delegator stopped.
var ErrStopped = errors.New("operator stopped")

// WriteStore opens the database transaction each action runs in.
type WriteStore interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriteStore
	queue   <-chan ActionItem
	done    <-chan struct{}
	logger  logrus.FieldLogger
}

func NewOperator(s WriteStore, queue <-chan ActionItem, done <-chan struct{}, logger logrus.FieldLogger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		done:    done,
		logger:  logger,
	}
}

// Run processes items until the delegator is stopped.
func (o *Operator) Run() {
	for {
		select {
		case item := <-o.queue:
			o.processItem(item)
		case <-o.done:
			return
		}
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rollbackErr := writer.Rollback(context.WithoutCancel(item.ctx)); rollbackErr != nil {
			o.logger.WithError(rollbackErr).Error("Operator.processItem.rollback")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
		o.logger.WithError(err).Error("Operator.processItem.commit")
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
