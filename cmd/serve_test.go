package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeFlagsBoundToConfig(t *testing.T) {
	for key, name := range map[string]string{"APP_PORT": "port", "DATABASE_DRIVER": "db-driver"} {
		flag := serveCmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)

		require.NoError(t, serveCmd.Flags().Set(name, "from-flag"))
		assert.Equal(t, "from-flag", viper.GetString(key))

		require.NoError(t, flag.Value.Set(""))
		flag.Changed = false
	}
}
