package admin

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Result is the uniform outcome of a use case.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func failed[T any](err error) Result[T] {
	return Result[T]{Success: false, Error: err.Error()}
}

// run executes fn and converts any error, or panic, into a failed Result.
func run[T any](ctx context.Context, logger *zap.Logger, useCase string, fn func(ctx context.Context) (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("use case panicked", zap.String("useCase", useCase), zap.Any("panic", r))
			res = failed[T](fmt.Errorf("%s: unexpected failure: %v", useCase, r))
		}
	}()

	data, err := fn(ctx)
	if err != nil {
		logger.Warn("use case failed", zap.String("useCase", useCase), zap.Error(err))
		return failed[T](err)
	}
	return ok(data)
}
