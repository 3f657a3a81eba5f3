package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidCanisterID     = errors.New("invalid canister id")
	ErrCanisterNotConfigured = errors.New("canister is not configured")

	ErrServerFailed = errors.New("bootstrap server failed")
)
