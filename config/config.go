package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed chatbots.toml
var defaultConfigFile []byte

// DefaultSystemPromptFile is read from the working directory unless
// overridden via flag or config file.
const DefaultSystemPromptFile = "prompts.txt"

func InitConfig(file string) {
	viper.SetConfigName("chatbots")
	viper.SetConfigType("toml")
	viper.AddConfigPath(getConfigDir()) // $XDG_CONFIG_HOME takes precedence over config in repo dir
	viper.AddConfigPath("./config")     // in the repo

	if file != "" {
		viper.SetConfigFile(file)
		return
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// create config file from embedded default file
			viper.ReadConfig(bytes.NewBuffer(defaultConfigFile))
			configPath := filepath.Join(getConfigDir(), "chatbots.toml")
			if err := os.WriteFile(configPath, defaultConfigFile, 0644); err != nil {
				fmt.Printf("Error writing default config: %v", err)
			}
		} else {
			fmt.Println("Error reading config file: ", err)
			os.Exit(1)
		}
	}
}

// LoadDotEnv loads a .env file from the working directory so the API key is
// available before the client is built. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
	}
}

// LoadSystemPrompt reads the system prompt file whole. An absent file yields
// an empty prompt, not an error; anything else is reported to the caller but
// still yields an empty prompt.
func LoadSystemPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read system prompt %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func getConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, _ := os.UserHomeDir()
		configHome = filepath.Join(homeDir, ".config")
	}
	appConfigDir := filepath.Join(configHome, "chatbots")
	os.MkdirAll(appConfigDir, 0755)
	return appConfigDir
}
