package discord

import (
	"time"

	"github.com/go-resty/resty/v2"

	"pulse-srv/pkg/log"
)

// MessageType selects the embed color.
type MessageType string

const (
	MessageTypeInfo     MessageType = "info"
	MessageTypeSuccess  MessageType = "success"
	MessageTypeWarning  MessageType = "warning"
	MessageTypeError    MessageType = "error"
	MessageTypeCritical MessageType = "critical"
)

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

// MessageOptions describes one embed message.
type MessageOptions struct {
	Type        MessageType
	Title       string
	Description string
	Fields      []EmbedField
	Footer      *EmbedFooter
	Timestamp   time.Time
}

// Config tunes the webhook client.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

type discordImpl struct {
	l      log.Logger
	url    string
	config Config
	client *resty.Client
}
