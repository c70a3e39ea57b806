package configs

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Store    `mapstructure:"store"`
	Postgres `mapstructure:"postgres"`
	SQLite   `mapstructure:"sqlite"`
	Sensor   `mapstructure:"sensor"`
	MQTT     `mapstructure:"mqtt"`
	InfluxDB `mapstructure:"influxdb"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Store struct - Selects the TodoStore backend: memory, postgres or sqlite
type Store struct {
	Driver string `mapstructure:"driver"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// SQLite struct
type SQLite struct {
	Path        string `mapstructure:"path"`
	BusyTimeout int    `mapstructure:"busy_timeout"` // seconds
}

// Sensor struct - The microcontroller exposing climate readings over HTTP
type Sensor struct {
	Enabled  bool   `mapstructure:"enabled"`
	Mock     bool   `mapstructure:"mock"`
	BaseURL  string `mapstructure:"base_url"`
	Endpoint string `mapstructure:"endpoint"`
	Name     string `mapstructure:"name"`
	Interval int    `mapstructure:"interval"` // seconds
	Timeout  int    `mapstructure:"timeout"`  // seconds
}

// MQTT struct
type MQTT struct {
	Enabled     bool   `mapstructure:"enabled"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	ClientID    string `mapstructure:"client_id"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	TopicPrefix string `mapstructure:"topic_prefix"`
	QoS         int    `mapstructure:"qos"`
}

// InfluxDB struct
type InfluxDB struct {
	Enabled       bool   `mapstructure:"enabled"`
	URL           string `mapstructure:"url"`
	Token         string `mapstructure:"token"`
	Org           string `mapstructure:"org"`
	Bucket        string `mapstructure:"bucket"`
	BatchSize     int    `mapstructure:"batch_size"`
	FlushInterval int    `mapstructure:"flush_interval"` // seconds
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	setDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	if env != "" {
		viper.Set("app.env", env)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infoln("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
}

func setDefaults() {
	viper.SetDefault("app.port", "9089")
	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("sqlite.path", "./data/todos.db")
	viper.SetDefault("sqlite.busy_timeout", 5)
	viper.SetDefault("sensor.base_url", "http://192.168.0.100")
	viper.SetDefault("sensor.endpoint", "/api/clima")
	viper.SetDefault("sensor.name", "esp32")
	viper.SetDefault("sensor.interval", 3)
	viper.SetDefault("sensor.timeout", 2)
	viper.SetDefault("mqtt.port", 1883)
	viper.SetDefault("mqtt.client_id", "todolist-api")
	viper.SetDefault("mqtt.topic_prefix", "todolist")
	viper.SetDefault("mqtt.qos", 1)
	viper.SetDefault("influxdb.batch_size", 100)
	viper.SetDefault("influxdb.flush_interval", 10)
}
