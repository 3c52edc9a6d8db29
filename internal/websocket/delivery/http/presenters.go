package http

import (
	"github.com/gorilla/websocket"

	"pulse-srv/internal/model"
	ws "pulse-srv/internal/websocket"
)

type UpgradeReq struct {
	Token      string `form:"token"`
	HospitalID string `form:"hospital_id"`
}

func (r UpgradeReq) validate() error {
	if r.Token == "" {
		return ws.ErrMissingToken
	}
	return nil
}

func (r UpgradeReq) toInput(conn *websocket.Conn, sc model.Scope) ws.ConnectionInput {
	return ws.ConnectionInput{
		Scope:      sc,
		HospitalID: r.HospitalID,
		Conn:       conn,
	}
}
