package services

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("service not configured")
	ErrUpstream     = errors.New("upstream service failed")
)
