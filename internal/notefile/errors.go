package notefile

import "errors"

// Sentinel errors returned by [Codec]. Every codec error wraps exactly one of
// the first four; use [errors.Is] or [ResultOf] to classify a failure.
var (
	// ErrInvalidFile is returned when the header magic does not match: the
	// source is not a vault file.
	ErrInvalidFile = errors.New("not a vault file")

	// ErrInvalidVersion is returned when the header parses but the format
	// version is newer than this build understands.
	ErrInvalidVersion = errors.New("unsupported vault file version")

	// ErrIO is returned on any short read or write, and when the destination
	// collection rejects a duplicate note id during load.
	ErrIO = errors.New("vault file i/o error")

	// ErrEncryption is returned on cipher or key setup failures and when the
	// decrypted magic does not match, which almost always means a wrong
	// password.
	ErrEncryption = errors.New("vault encryption error")

	// ErrShortHeader accompanies [ErrIO] when the source ends inside the
	// plaintext header, e.g. an empty or foreign short file.
	ErrShortHeader = errors.New("vault header is truncated")
)

// Result is the closed set of outcomes of a save or load.
type Result int

const (
	Success Result = iota
	InvalidFile
	InvalidVersion
	IoError
	EncryptionError
)

var resultNames = [...]string{
	Success:         "Success",
	InvalidFile:     "InvalidFile",
	InvalidVersion:  "InvalidVersion",
	IoError:         "IoError",
	EncryptionError: "EncryptionError",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return "Result(unknown)"
	}
	return resultNames[r]
}

// ResultOf maps an error returned by [Codec] to its [Result]. A nil error is
// [Success]; an error that wraps none of the codec sentinels is reported as
// [IoError].
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrInvalidFile):
		return InvalidFile
	case errors.Is(err, ErrInvalidVersion):
		return InvalidVersion
	case errors.Is(err, ErrEncryption):
		return EncryptionError
	default:
		return IoError
	}
}
