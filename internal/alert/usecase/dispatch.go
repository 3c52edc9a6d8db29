package usecase

import (
	"context"
	"fmt"
	"strings"

	"pulse-srv/internal/alert"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/discord"
)

// Dispatch posts one alert as a Discord embed.
func (uc *implUseCase) Dispatch(ctx context.Context, a model.Alert) error {
	if uc.discord == nil {
		return nil
	}

	fields := []discord.EmbedField{
		buildField("Hospital", a.HospitalID, true),
		buildField("Severity", strings.ToUpper(string(a.Severity)), true),
		buildField("Type", string(a.Type), true),
	}
	fields = append(fields, metricFields(a.Metrics)...)

	ts := a.CreatedAt
	if ts.IsZero() {
		ts = uc.clock()
	}
	opts := discord.MessageOptions{
		Type:        messageType(a.Severity),
		Title:       a.Title,
		Description: a.Message,
		Fields:      fields,
		Timestamp:   ts,
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("Pulse • Alert %s", a.ID),
		},
	}

	if err := uc.discord.SendEmbed(ctx, opts); err != nil {
		uc.logger.Warnf(ctx, "internal.alert.usecase.Dispatch.SendEmbed: %v", err)
		return fmt.Errorf("%w: %v", alert.ErrDispatchFailed, err)
	}
	return nil
}
