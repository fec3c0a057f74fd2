package domain

import "errors"

var (
	// ErrJobNotFound is returned when a sync job has no seeded cursor.
	// This is a configuration error; cursors are never auto-created by the
	// sync path.
	ErrJobNotFound = errors.New("job cursor not found")

	// ErrBlockNumberMissing is returned when a cursor exists but carries no
	// processing block number
	ErrBlockNumberMissing = errors.New("job cursor has no block number")

	// ErrCollectionNotFound is returned when a collection is not found
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrCardNotFound is returned when a card is not found
	ErrCardNotFound = errors.New("card not found")

	// ErrSaleNotFound is returned when a sale is not found
	ErrSaleNotFound = errors.New("sale not found")
)
