package exchangerate

import ierr "github.com/puntoventa/puntoventa/internal/errors"

var errInvalidQuote = ierr.NewError("invalid exchange rate quote").
	WithHint("The quote source returned no usable rate").
	Mark(ierr.ErrHTTPClient)
