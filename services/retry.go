package services

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RetryPolicy 最大Attempts回試す。n回目（1始まり）が失敗したらDelay*n待つ
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

type retryable interface {
	Retryable() bool
}

// IsRetryable 通信エラーと、自らリトライ可能と示すエラー（レート制限、5xx）はtrue
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var r retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Retry 成功するか、リトライ不可のエラーか、回数切れか、ctxが終了するまでfnを呼ぶ
func Retry[T any](ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 1; i <= attempts; i++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if ctx.Err() != nil || !IsRetryable(err) || i == attempts {
			break
		}

		logrus.WithError(err).Warnf("Retry %d failed", i)
		timer := time.NewTimer(policy.Delay * time.Duration(i))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, errors.Wrap(ctx.Err(), lastErr.Error())
		case <-timer.C:
		}
	}
	return zero, lastErr
}
