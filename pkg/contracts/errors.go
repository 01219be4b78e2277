package contracts

import "context"

type ErrorHandler interface {
	Handle(ctx context.Context, err error) error
}
