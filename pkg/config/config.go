package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	Refresh  RefreshConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP propio.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UpstreamConfig bases de los dos back-ends consumidos.
//
// APIBaseURL es el back-end operacional (inventario, alertas, RFID, demanda);
// SalesAPIURL el de ventas. Se sobreescriben con API_BASE_URL y
// LARAVEL_API_URL respectivamente.
type UpstreamConfig struct {
	APIBaseURL  string
	SalesAPIURL string
}

// RefreshConfig ciclo de refresco del snapshot.
type RefreshConfig struct {
	Interval      time.Duration // intervalo entre ciclos; siempre > 0
	TrendsFromAPI bool          // true = componer tendencias desde /sales y /sensor-alert
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env en el directorio de trabajo). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	intervalMS := getInt64(v, "REFRESH_INTERVAL_MS", 30_000)
	if intervalMS <= 0 {
		return nil, fmt.Errorf("config: REFRESH_INTERVAL_MS debe ser positivo, recibido %d", intervalMS)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "warehouse-analytics"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Upstream: UpstreamConfig{
			APIBaseURL:  getString(v, "API_BASE_URL", "http://localhost:5001"),
			SalesAPIURL: getString(v, "LARAVEL_API_URL", "http://localhost:8000/api"),
		},
		Refresh: RefreshConfig{
			Interval:      time.Duration(intervalMS) * time.Millisecond,
			TrendsFromAPI: getBool(v, "TRENDS_FROM_API", false),
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
		return v.GetInt(key)
	}
	return def
}

func getInt64(v *viper.Viper, key string, def int64) int64 {
	if v.IsSet(key) {
		return v.GetInt64(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
