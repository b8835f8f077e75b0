package domain

import "errors"

// Sentinel errors for the supplier domain. Use errors.Is() to check these.
var (
	// ErrSupplierNotFound indicates the requested supplier does not exist.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrSupplierAlreadyExists indicates a supplier with the same name is
	// already registered.
	ErrSupplierAlreadyExists = errors.New("supplier already exists")

	// ErrInvalidSupplier indicates the supplier violates domain constraints.
	ErrInvalidSupplier = errors.New("invalid supplier")
)
