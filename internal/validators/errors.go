package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownSortField = errors.New("unknown sort field")
	ErrInvalidAvgVote   = errors.New("avg_vote is not a number")
)
