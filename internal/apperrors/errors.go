package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrProtected indicates an attempt to remove a standard account.
var ErrProtected = errors.New("account is protected")

// ErrConflict indicates the operation conflicts with existing state,
// e.g. deleting an account that posted vouchers still reference.
var ErrConflict = errors.New("operation conflicts with existing state")

// ErrImbalanced indicates a voucher whose debit and credit totals differ,
// or whose total is not strictly positive.
var ErrImbalanced = errors.New("voucher debits and credits do not balance")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
