package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pulse-srv/internal/model"
	ws "pulse-srv/internal/websocket"
	"pulse-srv/pkg/log"
)

// implUseCase implements websocket.UseCase.
type implUseCase struct {
	hub    *Hub
	logger log.Logger
	cfg    ws.Config
	now    func() time.Time
}

// New creates a new WebSocket UseCase.
func New(logger log.Logger, cfg ws.Config) ws.UseCase {
	return &implUseCase{
		hub:    newHub(logger, cfg.MaxConnections),
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (uc *implUseCase) Run() {
	uc.hub.run()
}

func (uc *implUseCase) Shutdown(ctx context.Context) error {
	uc.hub.stop()
	return nil
}

func (uc *implUseCase) Register(ctx context.Context, input ws.ConnectionInput) error {
	if input.Conn == nil {
		return ws.ErrInvalidMessage
	}
	if input.HospitalID != "" && !input.Scope.CanAccessHospital(input.HospitalID) {
		return ws.ErrHospitalForbidden
	}
	if uc.hub.full() {
		return ws.ErrMaxConnectionsReached
	}

	client := newConnection(uc.hub, input.Conn, input.Scope, input.HospitalID, uc.cfg, uc.logger)
	if !uc.hub.add(client) {
		return ws.ErrHubClosed
	}

	go client.writePump()
	go client.readPump()

	uc.logger.Infof(ctx, "internal.websocket.usecase.Register: user=%s hospital=%s", input.Scope.UserID, input.HospitalID)
	return nil
}

func (uc *implUseCase) GetStats(ctx context.Context) (ws.HubStats, error) {
	active, unique := uc.hub.Stats()
	return ws.HubStats{
		ActiveConnections: active,
		TotalUniqueUsers:  unique,
	}, nil
}

func (uc *implUseCase) ProcessMessage(ctx context.Context, input ws.ProcessMessageInput) error {
	parsed, err := parseChannel(input.Channel)
	if err != nil {
		uc.logger.Warnf(ctx, "internal.websocket.usecase.ProcessMessage.parseChannel: %s: %v", input.Channel, err)
		return nil
	}

	switch parsed.ChannelType {
	case ws.ChannelTypeAlert:
		return uc.pushAlert(ctx, parsed, input.Payload)
	case ws.ChannelTypeSystem:
		return uc.pushSystem(ctx, input.Payload)
	}
	return nil
}

func (uc *implUseCase) pushAlert(ctx context.Context, parsed ParsedChannel, payload []byte) error {
	var a model.Alert
	if err := json.Unmarshal(payload, &a); err != nil {
		return fmt.Errorf("%w: %v", ws.ErrInvalidMessage, err)
	}
	if a.HospitalID == "" {
		a.HospitalID = parsed.HospitalID
	}

	ts := a.CreatedAt
	if ts.IsZero() {
		ts = uc.now().UTC()
	}
	out, err := json.Marshal(ws.NotificationOutput{Type: ws.MessageTypeAlert, Timestamp: ts, Payload: a})
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	n := uc.hub.SendToHospital(parsed.HospitalID, out)
	uc.logger.Debugf(ctx, "internal.websocket.usecase.pushAlert: alert=%s hospital=%s delivered=%d", a.ID, parsed.HospitalID, n)
	return nil
}

func (uc *implUseCase) pushSystem(ctx context.Context, payload []byte) error {
	var p ws.SystemPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("%w: %v", ws.ErrInvalidMessage, err)
	}
	out, err := json.Marshal(ws.NotificationOutput{Type: ws.MessageTypeSystem, Timestamp: uc.now().UTC(), Payload: p})
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	uc.hub.Broadcast(out)
	return nil
}
