// Package services implements the gRPC service layer over the in-memory
// stores. This file centralizes common service-level error values; the
// service methods translate them into gRPC status codes at the RPC boundary.
package services

import "errors"

var (
	// ErrMovieNotFound indicates that a unary catalog lookup referenced an
	// unknown movie id.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrUserNotFound indicates that a unary profile lookup referenced an
	// unknown user id.
	ErrUserNotFound = errors.New("user not found")
)
