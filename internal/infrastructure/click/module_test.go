package click

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "выключен", cfg: Config{Database: "drop table; --"}},
		{name: "валидный", cfg: Config{Enabled: true, Host: "localhost", Port: "9000", Database: "analytics_1"}},
		{name: "нет хоста", cfg: Config{Enabled: true, Port: "9000", Database: "default"}, wantErr: "host and port"},
		{name: "имя с точкой", cfg: Config{Enabled: true, Host: "localhost", Port: "9000", Database: "a.b"}, wantErr: "invalid database name"},
		{name: "инъекция", cfg: Config{Enabled: true, Host: "localhost", Port: "9000", Database: "x; DROP TABLE y"}, wantErr: "invalid database name"},
		{name: "с цифры", cfg: Config{Enabled: true, Host: "localhost", Port: "9000", Database: "1db"}, wantErr: "invalid database name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRecordWriter_Table(t *testing.T) {
	w := NewRecordWriter(&Client{database: "analytics"})
	assert.Equal(t, "analytics.calculations_analytics", w.Table())
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(context.Background(), &Config{Enabled: true, Host: "localhost", Port: "9000", Database: "bad-name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database name")
}
