package crypto

import "fmt"

const (
	// MinPasswordLength and MaxPasswordLength bound [GeneratePassword].
	MinPasswordLength = 1
	MaxPasswordLength = 1024

	firstPasswordChar = '!'
	lastPasswordChar  = '~'
	passwordAlphabet  = lastPasswordChar - firstPasswordChar + 1
)

// GeneratePassword returns length characters drawn uniformly from the
// printable ASCII range '!'..'~'.
//
// Random bytes at or above the largest multiple of the alphabet size are
// discarded, so every character is equally likely.
func GeneratePassword(length int) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", fmt.Errorf("%w: %d", ErrInvalidPasswordLength, length)
	}

	const limit = 256 - 256%passwordAlphabet

	out := make([]byte, 0, length)
	for len(out) < length {
		chunk, err := Random(length - len(out) + 8)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		for _, b := range chunk {
			if int(b) >= limit {
				continue
			}
			out = append(out, byte(firstPasswordChar+int(b)%passwordAlphabet))
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
