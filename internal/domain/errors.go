package domain

import "errors"

var (
	// ErrNotConsumerProduct is returned when the analyzed item is not a
	// food, beverage, or personal care product
	ErrNotConsumerProduct = errors.New("not a consumer product")

	// ErrUnsupportedCategory is returned when the product category is not
	// one of the known scoring categories
	ErrUnsupportedCategory = errors.New("unsupported product category")

	// ErrExtractionFailed is returned when the AI extractor cannot produce
	// a usable product analysis
	ErrExtractionFailed = errors.New("product extraction failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrHistoryUnavailable is returned when the history store cannot be
	// reached
	ErrHistoryUnavailable = errors.New("history store unavailable")
)
