package indicator

import "errors"

var (
	// ErrInsufficientData reports fewer than two price points, the
	// minimum needed to form a single delta. Short-but-valid histories
	// (fewer than period+1 points) are NOT an error; they produce an
	// all-undefined RSI column instead.
	ErrInsufficientData = errors.New("insufficient price data")

	// ErrInvalidParameter reports an unusable period or a
	// non-chronological input series.
	ErrInvalidParameter = errors.New("invalid parameter")
)
