package populate

import "errors"

// ErrInvalidParameter indicates a negative user count or friendship average.
var ErrInvalidParameter = errors.New("populate: invalid parameter")

// ErrPopulationUnsatisfiable indicates the rejection sampler cannot (or, under
// WithMaxAttempts, did not) reach the requested number of friendships.
var ErrPopulationUnsatisfiable = errors.New("populate: population unsatisfiable")

// ErrUnknownStrategy indicates ByName received a name it does not recognize.
var ErrUnknownStrategy = errors.New("populate: unknown strategy")
