package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrEshboboyev/api-versioning/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		type cfg struct {
			Driver string `env:"TEST_CONFIG_DRIVER" envDefault:"memory"`
			Port   int    `env:"TEST_CONFIG_PORT" envDefault:"8080"`
		}

		var c cfg
		require.NoError(t, config.Load(&c))
		assert.Equal(t, "memory", c.Driver)
		assert.Equal(t, 8080, c.Port)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_NAME", "products-api")

		type cfg struct {
			Name string `env:"TEST_CONFIG_NAME" envDefault:"unset"`
		}

		var c cfg
		require.NoError(t, config.Load(&c))
		assert.Equal(t, "products-api", c.Name)
	})

	t.Run("required variable missing", func(t *testing.T) {
		type cfg struct {
			Secret string `env:"TEST_CONFIG_MISSING_SECRET,required"`
		}

		var c cfg
		err := config.Load(&c)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[struct{}](nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type cfg struct {
			Token string `env:"TEST_CONFIG_MISSING_TOKEN,required"`
		}

		assert.Panics(t, func() {
			var c cfg
			config.MustLoad(&c)
		})
	})
}
