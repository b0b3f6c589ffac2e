package seqs

import "github.com/pkg/errors"

var (
	// ErrEmpty is reported when a reduction without an initial value runs over an empty sequence.
	ErrEmpty = errors.New("seqs: reduction of empty sequence with no initial value")

	// ErrInvalidArgument is the panic value (wrapped) for caller errors such as
	// a non-positive window size or a negative index.
	ErrInvalidArgument = errors.New("seqs: invalid argument")
)

func invalidArg(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
