package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед очередной паузой между попытками
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc
	OnRetry     NotifyFunc
}

// ConnectConfig - общий профиль ретраев для установки соединений при старте (postgres, kafka).
func ConnectConfig(initialInterval time.Duration) Config {
	return Config{
		InitialInterval: initialInterval,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
		ShouldRetry:     nil,
	}
}

// WithShouldRetry копия конфига с фильтром ретраибельных ошибок
func (c Config) WithShouldRetry(fn ShouldRetryFunc) Config {
	c.ShouldRetry = fn
	return c
}

// WithOnRetry копия конфига с хуком на каждую неудачную попытку
func (c Config) WithOnRetry(fn NotifyFunc) Config {
	c.OnRetry = fn
	return c
}
