package synth

import "errors"

// ErrInvalidArgument reports an unrecognized term, a term targeting a mode
// outside the output range, or a background of the wrong length.
var ErrInvalidArgument = errors.New("synth: invalid argument")
