package discord

import (
	"context"
	"fmt"
	"time"
)

func (d *discordImpl) Close() error {
	d.client.GetClient().CloseIdleConnections()
	return nil
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	n := min(len(options.Fields), MaxFields)
	fields := make([]EmbedField, n)
	for i, f := range options.Fields[:n] {
		f.Value = truncate(f.Value, MaxFieldValueLen)
		fields[i] = f
	}

	embed := Embed{
		Title:       truncate(options.Title, MaxTitleLen),
		Description: truncate(options.Description, MaxDescriptionLen),
		Color:       colorFor(options.Type),
		Fields:      fields,
		Footer:      options.Footer,
	}
	if !options.Timestamp.IsZero() {
		embed.Timestamp = options.Timestamp.Format(time.RFC3339)
	}
	if n := embedLength(embed); n > MaxEmbedLength {
		return fmt.Errorf("discord: embed too long: %d characters (max: %d)", n, MaxEmbedLength)
	}

	return d.send(ctx, WebhookPayload{Username: d.config.Username, Embeds: []Embed{embed}})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       ReportBugTitle,
		Description: fmt.Sprintf("```%s```", truncate(message, MaxDescriptionLen-6)),
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(d.url)
	if err != nil {
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.send: %v", err)
		}
		return fmt.Errorf("discord: send: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("discord: webhook returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return ColorSuccess
	case MessageTypeWarning:
		return ColorWarning
	case MessageTypeError:
		return ColorError
	case MessageTypeCritical:
		return ColorCritical
	default:
		return ColorInfo
	}
}

func embedLength(e Embed) int {
	n := len(e.Title) + len(e.Description)
	for _, f := range e.Fields {
		n += len(f.Name) + len(f.Value)
	}
	if e.Footer != nil {
		n += len(e.Footer.Text)
	}
	return n
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
