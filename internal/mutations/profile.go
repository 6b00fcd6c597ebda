package mutations

import (
	"context"
	"strings"

	"github.com/fintrack/backend/internal/models"
)

// UpdateProfile sets the display name of the user.
func (h *Handler) UpdateProfile(ctx context.Context, displayName string) (models.Profile, error) {
	if strings.TrimSpace(displayName) == "" {
		return models.Profile{}, invalid("displayName", "is required")
	}

	profile, err := h.data.Profiles.Update(ctx, h.data.UserID, func(p *models.Profile) {
		p.DisplayName = displayName
	})
	if err != nil {
		return models.Profile{}, h.fail("Erro ao atualizar perfil", "update profile", err)
	}

	h.succeed(ctx, "Perfil atualizado", "Seu perfil foi atualizado.")
	return profile, nil
}
