package ioresult

import (
	"github.com/sourya7/go-eff/v2/ioeither"
)

//go:inline
func ChainConsumer[A any](c Consumer[A]) Operator[A, struct{}] {
	return ioeither.ChainConsumer[error](c)
}

//go:inline
func ChainFirstConsumer[A any](c Consumer[A]) Operator[A, A] {
	return ioeither.ChainFirstConsumer[error](c)
}
