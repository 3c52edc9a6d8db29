package http

import (
	"pulse-srv/internal/forecast"
	"pulse-srv/pkg/discord"
	"pulse-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      forecast.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc forecast.UseCase, d discord.IDiscord) Handler {
	return Handler{l: l, uc: uc, discord: d}
}
