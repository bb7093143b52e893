package mocks

import (
	"context"

	"backoffice/infras/kafka"
)

type publisherImpl struct {
}

// Publish implements kafka.Publisher.
func (p *publisherImpl) Publish(_ context.Context, _ ...kafka.Event) error {
	return nil
}

func NewPublisher() kafka.Publisher {
	return &publisherImpl{}
}
