package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-persona-keeper/models"
)

// IdentityService manages identity records in the unlocked record store.
type IdentityService interface {
	// Create stores a new identity and returns it with its assigned ID and
	// timestamps.
	Create(ctx context.Context, identity models.Identity) (models.Identity, error)

	// Update replaces an existing identity. It returns store.ErrRecordNotFound
	// when no record carries identity.ID.
	Update(ctx context.Context, identity models.Identity) (models.Identity, error)

	Get(ctx context.Context, id string) (models.Identity, error)
	List(ctx context.Context) ([]models.Identity, error)
	Delete(ctx context.Context, id string) error
}

// IdentityServiceWrapper defines middleware composition for IdentityService.
type IdentityServiceWrapper interface {
	Wrap(IdentityService) IdentityService
}

// BackupService moves the whole record store in and out of encrypted export
// bundles. Both methods wipe password on every path.
type BackupService interface {
	// Export writes a bundle of the current store to w.
	Export(ctx context.Context, w io.Writer, password []byte) error

	// Import replaces every record with the contents of the bundle read
	// from r. A wrong password and a corrupted bundle both yield
	// backup.ErrAuthenticationFailure.
	Import(ctx context.Context, r io.Reader, password []byte) error
}

// AutoLockJob periodically locks the app once the session expires.
type AutoLockJob interface {
	// Start launches the background check every interval, defaulting to 15
	// seconds when interval is zero or negative. A running job is stopped
	// first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit.
	Stop()
}
