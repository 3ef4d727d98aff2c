package refzg

import "errors"

// ErrBadRefClocks is returned by New when ref's layout does not match
// decl's declared clock/process counts.
var ErrBadRefClocks = errors.New("refzg: reference-clock layout does not match system declaration")
