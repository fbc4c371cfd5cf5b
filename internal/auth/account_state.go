package auth

import (
	"time"

	"github.com/spec-kit/pantheon-service/internal/domain"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// CheckAccountStatus gates login for suspended accounts. A banned account
// whose suspension end lies in the future (or is open-ended) cannot obtain a
// token even with correct credentials; once the end passes, login succeeds
// again. Only login consults this — issued tokens are never re-checked.
func CheckAccountStatus(status domain.AccountStatus, bannedUntil *time.Time, now time.Time) error {
	if status != domain.AccountBanned {
		return nil
	}
	if bannedUntil != nil && !now.Before(*bannedUntil) {
		return nil
	}
	return apperrors.NewAccountSuspended(bannedUntil)
}
