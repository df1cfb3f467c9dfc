package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound     = "player not found"
	ErrMsgDuplicatePlayer    = "player already exists"
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgAccessDenied       = "access denied"

	// Item errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgDuplicateItem  = "item already exists"
	ErrMsgNotInInventory = "item not in inventory"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgWalletOverflow    = "wallet overflow"
	ErrMsgMismatch          = "exchange does not balance"

	// Balance arithmetic errors
	ErrMsgBalanceOverflow  = "balance above maximum"
	ErrMsgBalanceUnderflow = "balance below zero"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound     = errors.New(ErrMsgPlayerNotFound)
	ErrDuplicatePlayer    = errors.New(ErrMsgDuplicatePlayer)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrAccessDenied       = errors.New(ErrMsgAccessDenied)

	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItem  = errors.New(ErrMsgDuplicateItem)
	ErrNotInInventory = errors.New(ErrMsgNotInInventory)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrWalletOverflow    = errors.New(ErrMsgWalletOverflow)
	ErrMismatch          = errors.New(ErrMsgMismatch)

	ErrBalanceOverflow  = errors.New(ErrMsgBalanceOverflow)
	ErrBalanceUnderflow = errors.New(ErrMsgBalanceUnderflow)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrTxClosed = errors.New(ErrMsgTxClosed)
)
