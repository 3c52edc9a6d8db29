package http

import (
	"pulse-srv/internal/websocket"
	"pulse-srv/pkg/log"
	"pulse-srv/pkg/scope"
)

type Handler struct {
	uc       websocket.UseCase
	jwtMgr   scope.Manager
	logger   log.Logger
	wsConfig websocket.Config
}

func New(uc websocket.UseCase, jwtMgr scope.Manager, logger log.Logger, wsCfg websocket.Config) *Handler {
	return &Handler{
		uc:       uc,
		jwtMgr:   jwtMgr,
		logger:   logger,
		wsConfig: wsCfg,
	}
}
