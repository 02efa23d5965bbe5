package main

import (
	"github.com/fsnotify/fsnotify"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"hydrocalc/handler"
	"hydrocalc/hydraulics"
	"hydrocalc/pkg/conf"
	"hydrocalc/pkg/logger"
	"hydrocalc/service"
)

func main() {
	conf.InitConf("./hydrocalc.yaml")
	logger.InitLogger("hydrocalc")
	defer logger.Sync()

	conf.OnChange(func(e fsnotify.Event) {
		logger.SetLevel(conf.Conf.GetString("log.level"))
		logger.Logger.Infof("config %s reloaded, log level %s", e.Name, logger.Level())
	})

	cfg, err := serviceConfig()
	if err != nil {
		logger.Logger.Errorf("invalid calculation config: %v", err)
		return
	}

	var db *gorm.DB
	if dsn := conf.Conf.GetString("db.dsn"); dsn != "" {
		db, err = service.OpenDB(service.DBConfig{
			DSN:          dsn,
			Replicas:     conf.Conf.GetStringSlice("db.replicas"),
			MaxOpenConns: conf.Conf.GetInt("db.maxOpenConns"),
			MaxIdleConns: conf.Conf.GetInt("db.maxIdleConns"),
		}, gormLogger.Warn)
		if err != nil {
			logger.Logger.Errorf("failed to connect database: %v", err)
			return
		}
	} else {
		logger.Logger.Warn("db.dsn not set, calculation history is disabled")
	}

	svc := service.NewService(db, cfg)
	r := SetupRouter(svc)
	if err = r.Run(conf.Conf.GetString("server.addr")); err != nil {
		logger.Logger.Errorf("server stopped: %v", err)
	}
}

func serviceConfig() (service.Config, error) {
	ratios, err := hydraulics.SweepRatios(
		conf.Conf.GetFloat64("curve.start"),
		conf.Conf.GetFloat64("curve.stop"),
		conf.Conf.GetFloat64("curve.step"),
	)
	if err != nil {
		return service.Config{}, err
	}
	return service.Config{
		Solver: hydraulics.FrictionFactorSolver{
			InitialGuess:  conf.Conf.GetFloat64("friction.initialGuess"),
			Tolerance:     conf.Conf.GetFloat64("friction.tolerance"),
			MaxIterations: conf.Conf.GetInt("friction.maxIterations"),
		},
		CurveRatios: ratios,
		Gravity:     conf.Conf.GetFloat64("pipeline.gravity"),
		DropDivisor: conf.Conf.GetFloat64("pipeline.dropDivisor"),
	}, nil
}

func SetupRouter(svc *service.Service) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{conf.Conf.GetString("frontend.host")}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.ExposeHeaders = []string{"Content-Disposition"}
	r.Use(cors.New(config))

	h := handler.NewHandler(svc)
	api := r.Group("/v1")
	{
		api.POST("/pump/correction", h.CorrectPump)
		api.POST("/pump/curve", h.CorrectPumpCurve)
		api.POST("/pump/curve/export", h.ExportPumpCurve)
		api.POST("/pump/equivalent", h.EquivalentWater)
		api.POST("/pump/equivalent/export", h.ExportEquivalent)
		api.POST("/pipeline/friction", h.SolveFriction)
		api.POST("/pipeline/sizing", h.SizePipeline)
		api.POST("/pipeline/sizing/export", h.ExportPipeline)
		api.POST("/pipeline/import", h.ImportPipelineCases)
		api.GET("/history", h.GetHistory)
	}

	return r
}
