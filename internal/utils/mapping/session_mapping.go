package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/models"
	"github.com/SscSPs/bank_portal/internal/utils"
)

// ToModelSession converts a domain Session to a model Session, sealing its token.
func ToModelSession(sealer *utils.Sealer, d *domain.Session) (models.Session, error) {
	sealed, err := sealer.Seal(d.Token)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to seal session token: %w", err)
	}
	profile, err := json.Marshal(d.User)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to encode session profile: %w", err)
	}
	return models.Session{
		SessionID:   d.ID,
		UserID:      d.User.ID,
		SealedToken: sealed,
		Profile:     profile,
		CreatedAt:   d.CreatedAt,
		ExpiresAt:   d.ExpiresAt,
	}, nil
}

// ToDomainSession converts a model Session to a domain Session, opening its token.
func ToDomainSession(sealer *utils.Sealer, m models.Session) (*domain.Session, error) {
	token, err := sealer.Open(m.SealedToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open session token: %w", err)
	}
	var user domain.User
	if err := json.Unmarshal(m.Profile, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session profile: %w", err)
	}
	return &domain.Session{
		ID:        m.SessionID,
		Token:     token,
		User:      user,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}, nil
}
