package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dimiro1/banner"

	llmagent "github.com/dhk1349/llm-agent"
	"github.com/dhk1349/llm-agent/tools"
)

const bannerTemplate = `{{ .Title "LLM Agent" "" 0 }}
`

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml, toml or json)")
	envFile := flag.String("env", "", "Path to a .env file (defaults to ./.env)")
	flag.Parse()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	cfg, err := llmagent.LoadConfig(*configPath, envFiles...)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, llmagent.ErrMissingAPIKey) {
			fmt.Println("Error: Please set your OPENAI_API_KEY environment variable")
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}

	logger, err := llmagent.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	store := tools.NewImageStore(cfg.ImagesDir)
	registry, err := llmagent.NewRegistry(tools.Manifest(store)...)
	if err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}

	executor, err := llmagent.NewExecutor(
		llmagent.NewLLM(cfg.OpenAIAPIKey, cfg.BaseURL),
		registry,
		llmagent.ExecutorConfig{
			Model:         cfg.Model,
			MaxIterations: cfg.MaxIterations,
		},
		llmagent.NewComponentLogger(logger, "executor"),
	)
	if err != nil {
		log.Fatalf("Failed to create executor: %v", err)
	}

	banner.Init(os.Stdout, true, true, bytes.NewBufferString(bannerTemplate))

	shell := llmagent.NewShell(executor, os.Stdin, os.Stdout, llmagent.NewComponentLogger(logger, "shell"))
	if err := shell.Run(context.Background()); err != nil {
		logger.Error("Shell stopped", "error", err)
		os.Exit(1)
	}
}
