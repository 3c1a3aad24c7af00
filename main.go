package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"daily_question_bot/bot"
	"daily_question_bot/config"
	"daily_question_bot/generator"
	"daily_question_bot/reddit"
	"daily_question_bot/server"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "", "optional path to config.json")
	envFile := flag.String("env", ".env", "dotenv file loaded before reading the environment")
	serve := flag.Bool("serve", false, "start web server and run once per POST /api/run")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	cfg, err := config.Load(*envFile, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// Provider problems are configuration errors; report them before the first run.
	if _, err := buildLLM(cfg.LLM); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	invoke := newInvoker(cfg)

	// Web server mode
	if *serve {
		srv, err := server.New(invoke, log.Default())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	res := invoke(context.Background())
	log.Printf("[cli] run done status=%d outcome=%s", res.StatusCode, res.Outcome)
	fmt.Println(res.Body)
	if !res.OK() {
		os.Exit(1)
	}
}

// newInvoker returns the trigger entry point: build collaborators, run once.
func newInvoker(cfg config.Config) server.RunFunc {
	return func(ctx context.Context) bot.Result {
		b, err := newBot(ctx, cfg)
		if err != nil {
			log.Printf("[ERROR] [cli] build bot: %v", err)
			return bot.Fail(bot.OutcomeSetupError, err)
		}
		return b.Run(ctx)
	}
}

// newBot wires fresh collaborators; every invocation gets its own clients.
func newBot(ctx context.Context, cfg config.Config) (*bot.Bot, error) {
	llm, err := buildLLM(cfg.LLM)
	if err != nil {
		return nil, err
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		return nil, err
	}
	rc := reddit.New(ctx, cfg.Reddit, reddit.Options{Verbose: verbose, Logger: log.Default()})
	return bot.New(rc, agent, rc, log.Default())
}

func buildLLM(cfg config.LLMConfig) (generator.LLMClient, error) {
	if cfg.Provider == "" {
		return nil, fmt.Errorf("llm config missing; please set llm.provider or LLM_PROVIDER")
	}
	switch cfg.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.Provider,
			Model:    cfg.Model,
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.BaseURL,
		})
	case "deepseek":
		// DeepSeek 提供 OpenAI 兼容接口，需填写 base_url（例如官方/网关地址）。
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.Provider,
			Model:    cfg.Model,
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.BaseURL,
		})
	case "mock":
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}
