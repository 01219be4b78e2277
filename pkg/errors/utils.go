package errors

import stderrors "errors"

// Is reports whether any error in err's chain matches target. Coded errors
// match by code (see Error.Is), so detail-carrying copies still satisfy
// Is(err, ErrDeclaration).
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As[T error](err error, target *T) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// CodeOf extracts the code of the nearest coded error in the chain, or the
// empty code for plain errors.
func CodeOf(err error) Code {
	var coded *Error
	if stderrors.As(err, &coded) {
		return coded.Code
	}
	return ""
}
