package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-maze/api"
	gameapi "github.com/beka-birhanu/vinom-maze/api/game"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/roundstore"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	roundStore      *roundstore.MemoryStore
	roundController api_i.Controller
	router          *api.Router
	appLogger       *logger.Logger
)

func initAppLogger() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}
	configureLogger(appLogger)
}

// configureLogger applies the configured level and format, falling back to info on a bad level.
func configureLogger(l *logger.Logger) {
	if err := l.SetLevel(config.Envs.LogLevel); err != nil {
		l.Warning(fmt.Sprintf("Ignoring log level %q: %v", config.Envs.LogLevel, err))
	}
	l.SetFormat(config.Envs.LogFormat)
}

func initRoundStore() {
	roundStore = roundstore.NewMemoryStore()
	appLogger.Info("Round store initialized")
}

// newGenerator gives every round its own generator. A fixed seed makes every round replay the same maze sequence.
func newGenerator() *maze.Generator {
	if config.Envs.MazeSeed != 0 {
		return maze.NewSeededGenerator(config.Envs.MazeSeed)
	}
	return maze.NewGenerator(nil)
}

func initRoundController() {
	roundLogger, err := logger.New("ROUND", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating round logger: %v", err))
		os.Exit(1)
	}
	configureLogger(roundLogger)

	roundController, err = gameapi.NewRoundController(roundStore, newGenerator, gameapi.Defaults{
		Cols:          config.Envs.MazeCols,
		Rows:          config.Envs.MazeRows,
		WallThickness: config.Envs.WallThickness,
	}, roundLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating round controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Round controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{roundController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	initAppLogger()
	initRoundStore()
	initRoundController()
	initRouter()

	appLogger.Info(fmt.Sprintf("Serving %dx%d mazes on %s:%d", config.Envs.MazeCols, config.Envs.MazeRows, config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
