package log_test

import (
	"context"
	"testing"

	"wedding-timeline/pkg/log"
)

func TestInit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "console debug", cfg: log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "json production", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "invalid level falls back", cfg: log.ZapConfig{Level: "loud", Mode: "production", Encoding: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("Init returned nil logger")
			}
			l.Debugf(ctx, "debug %d", 1)
			l.Infof(ctx, "info %s", "ok")
		})
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Error(context.Background(), "discarded")
	l.Warnf(context.Background(), "discarded %v", true)
}
