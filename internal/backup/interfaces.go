package backup

//go:generate mockgen -source=interfaces.go -destination=../mock/backup_mock.go -package=mock

// Codec encrypts whole data-store images under a user-chosen password.
// Both methods wipe password before returning.
type Codec interface {
	Encrypt(data, password []byte) ([]byte, error)
	Decrypt(bundle, password []byte) ([]byte, error)
}
