package protocal

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todolist-api/configs"
	httpAdapter "todolist-api/internal/adapters/input/http"
	"todolist-api/internal/application"
	"todolist-api/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	configureLogger(conf.App)
	logrus.Info(conf.App.Env)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	// Wire up the hexagonal architecture layers
	// Output adapter (store)
	store, closeStore, err := newTodoStore(conf)
	if err != nil {
		return err
	}
	// Application services (use cases)
	srv := application.NewTodoService(store)
	mathSrv := application.NewMathService()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sensorSrv *application.SensorService
	var sensorPort input.SensorService // stays a nil interface when polling is off
	pollerDone := make(chan struct{})
	if conf.Sensor.Enabled {
		sensorSrv = newSensorService(conf)
		sensorPort = sensorSrv
		go func() {
			defer close(pollerDone)
			sensorSrv.Run(ctx)
		}()
	} else {
		logrus.Info("Sensor polling disabled")
	}

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, mathSrv, sensorPort, conf.Store.Driver)
	hdl.RegisterRoutes(app)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logrus.Println("Gracefull shut down ...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logrus.Errorln("Error when shutdown server: ", err)
		}
	}()

	logrus.Println("Listerning on port: ", conf.App.Port)
	err = app.Listen(":" + conf.App.Port)

	stopSensor(cancel, pollerDone, sensorSrv)
	closeStore()
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", conf.App.Port, err)
	}
	return nil
}

func configureLogger(app configs.App) {
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if app.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
