//go:build tools

// Package tools pins the linter version used for threadpool.
// Install it with: cd tools && go install github.com/golangci/golangci-lint/cmd/golangci-lint
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
)
