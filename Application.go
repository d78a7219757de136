package main

import (
	"Padel/config"
	"Padel/logger"
	"fmt"
	"os"
)

func main() {
	env := os.Getenv("PADEL_ENV")
	if env == "" {
		env = config.DefaultEnv
	}

	props, err := config.ReadProperties("./", env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := logger.Log.Init(props.LoggerPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Log.Info(fmt.Sprintf(logger.ConfigLoadMsg, env))

	start(props)
}
