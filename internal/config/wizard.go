package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to zenmed! Let's configure the web server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Session store.
	storePrompt := promptui.Select{
		Label: "Where should session view state live",
		Items: []string{
			"memory: process memory, reset on restart",
			"redis: shared between instances",
		},
	}
	storeIdx, _, err := storePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("session store selection: %w", err)
	}
	stores := []SessionStoreType{SessionStoreMemory, SessionStoreRedis}
	cfg.Session.Store = stores[storeIdx]

	// 3. Redis address, only when needed.
	if cfg.Session.Store == SessionStoreRedis {
		redisPrompt := promptui.Prompt{
			Label:   "Redis address",
			Default: cfg.Redis.Address,
		}
		addr, err := redisPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("redis address: %w", err)
		}
		cfg.Redis.Address = addr
	}

	// 4. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{string(LogFormatConsole), string(LogFormatJSON)},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format selection: %w", err)
	}
	cfg.LogFormat = LogFormat(format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
