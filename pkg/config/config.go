package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App       AppConfig
	Auth      AuthConfig
	Dashboard DashboardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// AuthConfig configuración del flujo de acceso simulado. No hay credenciales
// reales: el código de aceptación es fijo y el retardo imita una API remota.
type AuthConfig struct {
	OTPCode string
	DelayMS int
}

// Delay devuelve el retardo artificial del flujo simulado.
func (c AuthConfig) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// DashboardConfig umbrales de los indicadores del tablero.
type DashboardConfig struct {
	LowStockThreshold int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// APP_NAME, LOG_LEVEL, AUTH_OTP_CODE, AUTH_DELAY_MS, LOW_STOCK_THRESHOLD.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "stockmaster"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			OTPCode: getString(v, "AUTH_OTP_CODE", "1234"),
			DelayMS: getInt(v, "AUTH_DELAY_MS", 800),
		},
		Dashboard: DashboardConfig{
			LowStockThreshold: getInt(v, "LOW_STOCK_THRESHOLD", 10),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
