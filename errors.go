package threadpool

import "errors"

// Namespace prefixes every error message of the package.
const Namespace = "threadpool"

var (
	// ErrInvalidSize is returned by Build for a zero size. It carries no further detail.
	ErrInvalidSize   = errors.New(Namespace + ": pool size must be greater than zero")
	// ErrInvalidConfig is returned by Build when an option is given invalid input.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
