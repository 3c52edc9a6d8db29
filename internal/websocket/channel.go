package websocket

import "fmt"

const (
	AlertChannelPattern  = "alert:*"
	SystemChannelPattern = "system:*"
)

// AlertChannel names the redis channel an alert for hospitalID is published on.
// Format: alert:{hospital_id}:{severity}
func AlertChannel(hospitalID, severity string) string {
	return fmt.Sprintf("%s:%s:%s", ChannelTypeAlert, hospitalID, severity)
}
