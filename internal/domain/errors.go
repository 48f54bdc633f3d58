package domain

import "fmt"

// ErrorCode identifies one of the closed set of circulation errors. Callers
// match on the error type with errors.As; the code and errno exist for wire
// representations.
type ErrorCode string

const (
	CodeEntityNotFound        ErrorCode = "ENTITY_NOT_FOUND"
	CodeItemNotCheckedOut     ErrorCode = "ITEM_NOT_CHECKED_OUT"
	CodeItemAlreadyCheckedOut ErrorCode = "ITEM_ALREADY_CHECKED_OUT"
	CodeItemNotCirculating    ErrorCode = "ITEM_NOT_CIRCULATING"
)

// NotFoundError reports an entity that does not exist. It is created by the
// entity store and propagated unchanged through the services.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Entity, e.Key)
}

func (e *NotFoundError) Code() ErrorCode { return CodeEntityNotFound }
func (e *NotFoundError) Errno() int      { return 1100 }

// NotCheckedOutError reports a renew or checkin on an item without an
// active checkout.
type NotCheckedOutError struct {
	Barcode string
}

func (e *NotCheckedOutError) Error() string {
	return fmt.Sprintf("item %s is not checked out", e.Barcode)
}

func (e *NotCheckedOutError) Code() ErrorCode { return CodeItemNotCheckedOut }
func (e *NotCheckedOutError) Errno() int      { return 1101 }

// AlreadyCheckedOutError reports a checkout attempt on an item that already
// has an active checkout. It carries the conflicting checkout.
type AlreadyCheckedOutError struct {
	Checkout *Checkout
}

func (e *AlreadyCheckedOutError) Error() string {
	return fmt.Sprintf("item %s is already checked out to borrower %d",
		e.Checkout.Barcode, e.Checkout.BorrowerNumber)
}

func (e *AlreadyCheckedOutError) Code() ErrorCode { return CodeItemAlreadyCheckedOut }
func (e *AlreadyCheckedOutError) Errno() int      { return 1105 }

// NotCirculatingError reports a checkout attempt on an item whose state does
// not allow circulation. It carries the item.
type NotCirculatingError struct {
	Item *Item
}

func (e *NotCirculatingError) Error() string {
	return fmt.Sprintf("item %s is not circulating (state %s)", e.Item.Barcode, e.Item.State)
}

func (e *NotCirculatingError) Code() ErrorCode { return CodeItemNotCirculating }
func (e *NotCirculatingError) Errno() int      { return 1106 }
