package ranges

import "errors"

var (
	ErrNotSequence            = errors.New("value is not a sequence")
	ErrMissingFrontVal        = errors.New("sequence does not support reading the front element by value")
	ErrMissingFrontRef        = errors.New("sequence does not support referencing the front element")
	ErrMissingAdvance         = errors.New("sequence does not support advancing")
	ErrMissingValues          = errors.New("sequence does not support conventional iteration")
	ErrEmptySequence          = errors.New("sequence is empty")
	ErrPullFromEmptySequence  = errors.New("pull from an empty sequence")
	ErrZipLengthMismatch      = errors.New("zipped sequences have different lengths")
	ErrIntervalEndBeforeStart = errors.New("interval end is smaller than its start")
	ErrNegativeCount          = errors.New("negative replication count")
)
