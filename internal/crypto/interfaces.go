package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every key-material primitive the vault needs.
// It knows nothing about files, notes or users; it only produces random
// bytes and derives keys.
//
// Flow for a new vault file:
//
//	Salt = GenerateSalt()
//	Key  = DeriveKey(password, Salt, iterations)
//	IV   = GenerateIV()            (fresh for every save)
type KeyChainService interface {
	// GenerateSalt returns SaltSize random bytes. The salt is not a secret;
	// it is written to the file header in the clear.
	GenerateSalt() ([]byte, error)

	// GenerateIV returns one cipher block of random bytes. A new IV is
	// generated for every save so that a key+IV pair is never reused.
	GenerateIV() ([]byte, error)

	// DeriveKey stretches password with salt into a KeySize-byte key using
	// PBKDF2-HMAC-SHA1 and the given iteration count. It is deterministic
	// and cannot fail; a wrong password is only detected after decryption.
	DeriveKey(password string, salt []byte, iterations int) []byte

	// GeneratePassword returns a random password of the given length made
	// of printable ASCII characters.
	GeneratePassword(length int) (string, error)
}
