package domain

import "errors"

// ErrAlreadySold rejects a second sell attempt on a tool. Selling is a
// one-way transition and SaleInfo is immutable once written.
var ErrAlreadySold = errors.New("tool already sold")
