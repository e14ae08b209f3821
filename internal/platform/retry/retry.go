package retry

import (
	"context"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy: MaxRetries reintentos después del primer intento, con espera
// InitialDelay * 2^n (sin jitter).
type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:   3,
		InitialDelay: time.Second,
	}
}

// Notify se llama antes de cada espera con el error del intento fallido.
type Notify func(err error, wait time.Duration)

// Do ejecuta op hasta que devuelva nil o se agoten los reintentos.
// Todo error se reintenta; se devuelve el último. Cancelar ctx corta la espera.
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error, notify Notify) error {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = DefaultPolicy().InitialDelay
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.InitialDelay
	eb.Multiplier = 2
	eb.RandomizationFactor = 0
	eb.MaxInterval = maxInterval(p)
	eb.MaxElapsedTime = 0
	eb.Reset()

	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(p.MaxRetries)), ctx)

	var n backoff.Notify
	if notify != nil {
		n = func(err error, wait time.Duration) { notify(err, wait) }
	}

	return backoff.RetryNotify(func() error { return op(ctx) }, b, n)
}

// maxInterval = InitialDelay * 2^MaxRetries, saturado en el máximo de time.Duration.
func maxInterval(p Policy) time.Duration {
	d := p.InitialDelay
	for i := 0; i < p.MaxRetries; i++ {
		if d > math.MaxInt64/2 {
			return time.Duration(math.MaxInt64)
		}
		d *= 2
	}
	return d
}
