package main

import (
	"github.com/sci-vis/elibrary/backend/internal/server"
	"github.com/sci-vis/elibrary/backend/internal/util"
	"github.com/sci-vis/elibrary/backend/pkg/logger"
	"github.com/sci-vis/elibrary/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
