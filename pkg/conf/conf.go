package conf

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var Conf = newViper()

var (
	mu        sync.Mutex
	listeners []func(fsnotify.Event)
)

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":12580")
	v.SetDefault("frontend.host", "http://localhost:5173")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "./logs")
	v.SetDefault("log.maxSize", 100)
	v.SetDefault("log.maxBackups", 7)
	v.SetDefault("log.maxAge", 30)
	v.SetDefault("log.compress", true)

	v.SetDefault("db.dsn", "")
	v.SetDefault("db.replicas", []string{})
	v.SetDefault("db.maxOpenConns", 20)
	v.SetDefault("db.maxIdleConns", 5)

	v.SetDefault("friction.initialGuess", 0.02)
	v.SetDefault("friction.tolerance", 1e-6)
	v.SetDefault("friction.maxIterations", 100)

	v.SetDefault("curve.start", 0.2)
	v.SetDefault("curve.stop", 1.5)
	v.SetDefault("curve.step", 0.1)

	v.SetDefault("pipeline.gravity", 9.81)
	v.SetDefault("pipeline.dropDivisor", 2.0)
}

// InitConf 加载配置文件并监听变更，文件不存在时只使用默认值
func InitConf(path string) {
	Conf.SetConfigFile(path)
	Conf.SetEnvPrefix("HYDROCALC")
	Conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Conf.AutomaticEnv()

	if err := Conf.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "read config %s failed, using defaults: %v\n", path, err)
		return
	}

	Conf.OnConfigChange(notify)
	Conf.WatchConfig()
}

// OnChange registers fn to run after the config file is reloaded.
func OnChange(fn func(fsnotify.Event)) {
	mu.Lock()
	defer mu.Unlock()
	listeners = append(listeners, fn)
}

func notify(e fsnotify.Event) {
	mu.Lock()
	fns := append([]func(fsnotify.Event){}, listeners...)
	mu.Unlock()
	for _, fn := range fns {
		fn(e)
	}
}
