package domain

import "errors"

// ErrInvalidParameter señala una precondición numérica violada por el caller.
// Siempre se envuelve con fmt.Errorf("%w: ...") para dar contexto.
var ErrInvalidParameter = errors.New("invalid parameter")
