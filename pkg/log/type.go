package log

import "go.uber.org/zap"

// ZapConfig configures the zap backend. Service, when set, is stamped on
// every line.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	Service      string
}

type zapLogger struct {
	sugarLogger *zap.SugaredLogger
	cfg         *ZapConfig
}
