package usecase

import (
	"fmt"
	"sort"
	"strings"

	"pulse-srv/internal/model"
	"pulse-srv/pkg/discord"
)

// messageType maps alert severity to the Discord embed style.
func messageType(s model.AlertSeverity) discord.MessageType {
	switch s {
	case model.SeverityCritical:
		return discord.MessageTypeCritical
	case model.SeverityHigh:
		return discord.MessageTypeError
	case model.SeverityMedium:
		return discord.MessageTypeWarning
	default:
		return discord.MessageTypeInfo
	}
}

func buildField(name string, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	return discord.EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// metricFields renders alert metrics in a stable order.
func metricFields(metrics map[string]any) []discord.EmbedField {
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]discord.EmbedField, 0, len(keys))
	for _, k := range keys {
		var v string
		switch x := metrics[k].(type) {
		case float64:
			v = formatFloat(x)
		case []string:
			v = strings.Join(x, ", ")
		default:
			v = fmt.Sprint(x)
		}
		fields = append(fields, buildField(titleCase(k), v, true))
	}
	return fields
}

func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
