//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (go tool goose -dir migrations ...)
// - github.com/sqlc-dev/sqlc/cmd/sqlc (go tool sqlc generate, see sqlc.yaml)
// - github.com/matryer/moq (mocks in *_mock_test.go)
