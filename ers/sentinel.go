package ers

// ErrOutOfMemory is returned when a container cannot allocate another
// node: either its node budget is exhausted or the runtime refused the
// allocation. The container is left unchanged.
const ErrOutOfMemory Error = Error("out of memory")

// ErrNotFound indicates that a lookup (by index, identity, name, or
// path) found nothing.
const ErrNotFound Error = Error("not found")

// ErrIO is the root of errors produced when a file could not be
// opened, read, or written completely.
const ErrIO Error = Error("i/o error")

// ErrCorruptData indicates persisted data that ended before the
// declared or expected number of records, or could not be decoded.
const ErrCorruptData Error = Error("corrupt data")

// ErrUninitializedContainer is the content of the panic produced when you
// attempt to perform an operation on an uninitialized sequence.
const ErrUninitializedContainer Error = Error("uninitialized container")

// ErrContainerClosed is returned for operations against a container
// that has been destroyed.
const ErrContainerClosed Error = Error("container is closed")

// ErrInvariantViolation is the root error of the errors reported when
// a container's structure does not match its declared shape.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrMalformedConfiguration indicates a configuration object that has
// failed validation.
const ErrMalformedConfiguration Error = Error("malformed configuration")

// ErrLimitExceeded is a constant sentinel error that indicates that a
// limit has been exceeded.
const ErrLimitExceeded Error = Error("limit exceeded")

// ErrInvalidInput indicates malformed input. These errors are not
// generally retriable.
const ErrInvalidInput Error = Error("invalid input")
