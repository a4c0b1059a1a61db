package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/robot-coverage/api"
	coverageapi "github.com/beka-birhanu/robot-coverage/api/coverage"
	api_i "github.com/beka-birhanu/robot-coverage/api/i"
	"github.com/beka-birhanu/robot-coverage/api/identity"
	"github.com/beka-birhanu/robot-coverage/config"
	"github.com/beka-birhanu/robot-coverage/infrastruture/token"
	"github.com/beka-birhanu/robot-coverage/logger"
	"github.com/beka-birhanu/robot-coverage/room"
	"github.com/beka-birhanu/robot-coverage/service"
	"github.com/beka-birhanu/robot-coverage/service/i"
)

// Global variables for dependencies
var (
	appLogger       *logger.Logger
	roomCatalog     *room.Catalog
	coverageService i.CoverageRunner
	jwtTokenizer    i.Tokenizer
	controllers     []api_i.Controller
	router          *api.Router
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	l.SetDebug(config.Envs.GinMode == "debug")
	return l
}

func initRoomCatalog() {
	if config.Envs.RoomsFile == "" {
		appLogger.Info("ROOMS_FILE not set, room catalogue disabled")
		return
	}

	var err error
	roomCatalog, err = room.LoadCatalog(config.Envs.RoomsFile)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading room catalogue: %v", err))
		os.Exit(1)
	}

	for _, name := range roomCatalog.Names() {
		r, _ := roomCatalog.ByName(name)
		appLogger.Debug(fmt.Sprintf("room %q (%dx%d, %d free cells):\n%s", name, r.Width(), r.Height(), r.TotalFreeArea(), r))
	}
	appLogger.Info(fmt.Sprintf("Loaded %d rooms from %s", len(roomCatalog.Names()), config.Envs.RoomsFile))
}

func initCoverageService() {
	var err error
	coverageService, err = service.NewCoverage(&service.CoverageConfig{
		MaxPathLength:   config.Envs.MaxPathLength,
		MaxParallelRuns: config.Envs.MaxParallelRuns,
		Logger:          newLogger("COVERAGE", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating coverage service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Coverage service initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initControllers() {
	coverageController, err := coverageapi.NewCoverageController(coverageService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating coverage controller: %v", err))
		os.Exit(1)
	}
	controllers = append(controllers, coverageController)

	if roomCatalog != nil {
		roomController, err := coverageapi.NewRoomController(roomCatalog, coverageService)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating room controller: %v", err))
			os.Exit(1)
		}
		controllers = append(controllers, roomController)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             controllers,
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = newLogger("APP", config.ColorGreen)

	initRoomCatalog()
	initCoverageService()
	initJWTTokenizer()
	initControllers()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
