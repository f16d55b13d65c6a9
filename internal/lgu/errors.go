package lgu

import "errors"

var (
	ErrNotFound      = errors.New("lgu not found")
	ErrQueryTooShort = errors.New("search query too short")
)
