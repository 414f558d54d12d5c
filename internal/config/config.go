package config

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/Bigsouley03/cat-payment-app/pkg/logger"
	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const ConfigTagName = "env"
const ConfigDefaultTagName = "default"

var config *Config

// Config holds every env-driven value used by the application. Only this
// struct must be used to read configuration, no direct access to env, ini
// or any other config source should be made.
type Config struct {
	AppEnv        string `env:"APP_ENV" default:"dev"`
	AppName       string `env:"APP_NAME" default:"cat_payment_app"`
	AppDebug      bool   `env:"APP_DEBUG" default:"1"`
	AppSchoolName string `env:"APP_SCHOOL_NAME" default:"École Exemple - Établissement Scolaire"`

	HttpListenAddr         string `env:"HTTP_LISTEN_ADDR" default:":8000"`
	HttpServerReadTimeout  int    `env:"HTTP_SERVER_READ_TIMEOUT"`
	HttpServerWriteTimeout int    `env:"HTTP_SERVER_WRITE_TIMEOUT"`

	PostgresReadHost     string `env:"POSTGRES_READ_HOST"`
	PostgresReadPort     string `env:"POSTGRES_READ_PORT"`
	PostgresReadUser     string `env:"POSTGRES_READ_USER"`
	PostgresReadPassword string `env:"POSTGRES_READ_PASSWORD"`
	PostgresReadDatabase string `env:"POSTGRES_READ_DBNAME"`

	PostgresWriteHost     string `env:"POSTGRES_WRITE_HOST"`
	PostgresWritePort     string `env:"POSTGRES_WRITE_PORT"`
	PostgresWriteUser     string `env:"POSTGRES_WRITE_USER"`
	PostgresWritePassword string `env:"POSTGRES_WRITE_PASSWORD"`
	PostgresWriteDatabase string `env:"POSTGRES_WRITE_DBNAME"`

	RedisAddr               string `env:"REDIS_ADDR"`
	RedisUsername           string `env:"REDIS_USER"`
	RedisPassword           string `env:"REDIS_PASS"`
	RedisDatabase           int    `env:"REDIS_DATABASE"`
	RedisUniversalKeyPrefix string `env:"REDIS_UNIVERSAL_KEY_PREFIX"`

	PromNamespace string `env:"PROM_NAMESPACE"`
	MetricsAddr   string `env:"METRICS_ADDR"`
	MetricsURI    string `env:"METRICS_URI" default:"/metrics"`

	// Single static credential pair guarding the dashboard. A placeholder
	// gate, not a real auth system.
	AdminUsername string `env:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" default:"admin123"`
	SessionKey    string `env:"SESSION_KEY" default:"receipt_app_user"`

	// Catalog sets. Deployment data, not code: schools differ on the
	// accepted payment types, class names and payment reasons.
	PaymentTypes      []string `env:"PAYMENT_TYPES" default:"cash,cheque,virement,mobile_money"`
	PaymentTypeLabels []string `env:"PAYMENT_TYPE_LABELS" default:"Espèces,Chèque,Virement,Mobile Money"`
	Classes           []string `env:"CLASSES" default:"Licence 1,Licence 2,Licence 3,Master 1,Master 2,Spécialisation"`
	PaymentReasons    []string `env:"PAYMENT_REASONS" default:"Frais de scolarité,Frais d'inscription,Frais de transport,Frais de cantine,Frais d'activités,Autre"`

	CurrencyCode   string `env:"CURRENCY_CODE" default:"MAD"`
	CurrencyLocale string `env:"CURRENCY_LOCALE" default:"fr"`

	LogLevel []string `env:"LOG_LEVEL"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.New("failed to load configuration file " + path + " error: " + err.Error())
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.New("failed to map env variables to Configuration object " + " error: " + err.Error())
	}

	applyDefaults(c)
	config = c
	return nil
}

// applyDefaults fills every field left at its zero value from the default
// struct tag. List fields are compacted first: an env var set to "" splits
// to [""], which must not shadow the default or leak an empty member into
// the catalog sets.
func applyDefaults(c *Config) {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		def, hasDefault := t.Field(i).Tag.Lookup(ConfigDefaultTagName)
		f := v.Field(i)

		if s, isStrings := f.Interface().([]string); isStrings {
			s = dropEmpty(s)
			if len(s) == 0 && hasDefault {
				s = strings.Split(def, ",")
			}
			f.Set(reflect.ValueOf(s))
			continue
		}

		if !hasDefault || !f.IsZero() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(def)
		case reflect.Bool:
			f.SetBool(def == "1" || def == "true")
		case reflect.Int:
			if n, err := strconv.Atoi(def); err == nil {
				f.SetInt(int64(n))
			}
		}
	}
}

func dropEmpty(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}

// Set replaces the loaded configuration. Tests use it to inject a config
// without touching the process environment.
func Set(c *Config) {
	config = c
}
