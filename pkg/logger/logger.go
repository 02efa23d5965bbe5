package logger

import (
	"os"
	"path/filepath"

	"hydrocalc/pkg/conf"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 在 InitLogger 之前是 no-op，测试中无需初始化
var Logger = zap.NewNop().Sugar()

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func InitLogger(name string) {
	SetLevel(conf.Conf.GetString("log.level"))

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(conf.Conf.GetString("log.dir"), name+".log"),
		MaxSize:    conf.Conf.GetInt("log.maxSize"),
		MaxBackups: conf.Conf.GetInt("log.maxBackups"),
		MaxAge:     conf.Conf.GetInt("log.maxAge"),
		Compress:   conf.Conf.GetBool("log.compress"),
		LocalTime:  true,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleCfg := encCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stdout), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(fileWriter), level),
	)
	Logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Sugar().Named(name)
}

// SetLevel 修改日志级别，非法值忽略
func SetLevel(l string) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(l)); err != nil {
		Logger.Warnf("invalid log level %q: %v", l, err)
		return
	}
	level.SetLevel(lvl)
}

func Level() zapcore.Level {
	return level.Level()
}

func Sync() {
	_ = Logger.Sync()
}
