package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInsufficientStock    = errors.New("not enough stock to confirm order items")
	ErrInsufficientBalance  = errors.New("balance is not enough")
	ErrInvalidTransition    = errors.New("status transition is not allowed")
	ErrCodeExhausted        = errors.New("unique code generation attempts exhausted")
	ErrNothingToCancel      = errors.New("order has no cancellable items")
	ErrRiderAlreadyAssigned = errors.New("order already has a rider assigned")
	ErrNotYetDelivered      = errors.New("delivery proof has not been captured")
	ErrAlreadyDelivered     = errors.New("delivery proof already captured")
	ErrAlreadyCredited      = errors.New("order already credited to seller balance")
	ErrWithdrawalNotPending = errors.New("withdrawal request already processed")
	ErrOrderNotCompleted    = errors.New("order is not completed yet")
)
