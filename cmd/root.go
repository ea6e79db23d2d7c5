/*
Copyright © 2025 Dan Romik
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danromik/Chatbots/config"
	"github.com/danromik/Chatbots/models"
	"github.com/danromik/Chatbots/models/openai"
	"github.com/danromik/Chatbots/repl"
	"github.com/danromik/Chatbots/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var configFile string

// rootCmd runs one capture -> request -> report cycle
var rootCmd = &cobra.Command{
	Use:   "chatbots",
	Short: "A minimal terminal client for OpenAI chat models",
	Long: `chatbots captures a multiline prompt from the terminal, forwards it to the
OpenAI chat completion API along with a static system prompt read from
prompts.txt, and prints the response with timing and token usage.

Keybinds:
- Submit prompt : ctrl+s
- Abort : ctrl+c
`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return openai.ValidateModelName(viper.GetString("model"))
	},
	RunE: runPromptCycle,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		config.InitConfig(configFile)
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/chatbots/chatbots.toml)")

	rootCmd.PersistentFlags().StringP("model", "m", "", "model that will answer the prompt")
	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.SetDefault("model", openai.DefaultModel)

	rootCmd.PersistentFlags().IntP("max-tokens", "t", 0, "output token budget for the response")
	viper.BindPFlag("max-tokens", rootCmd.PersistentFlags().Lookup("max-tokens"))
	viper.SetDefault("max-tokens", 2048)

	rootCmd.PersistentFlags().StringP("system-prompt-file", "P", "", "file whose contents steer model responses")
	viper.BindPFlag("system-prompt-file", rootCmd.PersistentFlags().Lookup("system-prompt-file"))
	viper.SetDefault("system-prompt-file", config.DefaultSystemPromptFile)

	rootCmd.PersistentFlags().StringP("style", "s", "", "glamour style used to render Markdown responses (default tokyo-night)")
	viper.BindPFlag("style", rootCmd.PersistentFlags().Lookup("style"))
	viper.SetDefault("style", "tokyo-night")

	rootCmd.PersistentFlags().String("openai-api-key", "", "allows access to OpenAI models")
	viper.BindPFlag("openai-api-key", rootCmd.PersistentFlags().Lookup("openai-api-key"))

	viper.SetDefault("submit-key", "ctrl+s")
	viper.SetDefault("abort-key", "ctrl+c")
}

func runPromptCycle(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	config.LoadDotEnv()

	systemPrompt, err := config.LoadSystemPrompt(viper.GetString("system-prompt-file"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	fd := int(os.Stdin.Fd())
	reporter := tui.NewReporter(os.Stdout, viper.GetString("style"), outputWidth(fd))

	userPrompt, err := capturePrompt(fd, reporter)
	if err != nil {
		if errors.Is(err, repl.ErrAborted) {
			reporter.Notice("Aborted.")
			return nil
		}
		return err
	}
	if userPrompt == "" {
		reporter.Notice("Empty prompt. Exiting.")
		return nil
	}

	reporter.Notice("Submitting prompt...")

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = viper.GetString("openai-api-key")
	}
	model := openai.NewModel(viper.GetInt("max-tokens"), viper.GetString("model"), apiKey)

	result, err := model.Complete(cmd.Context(), models.Prompt{System: systemPrompt, User: userPrompt})
	if err != nil {
		// request failures are shown to the user; the process still exits 0
		reporter.ReportError(err)
		return nil
	}
	reporter.Report(result)
	return nil
}

// capturePrompt collects the user prompt, from a pipe or interactively in
// raw mode. A submitted prompt is the only way a non-empty string comes back.
func capturePrompt(fd int, reporter *tui.Reporter) (string, error) {
	// if stdin is a pipe, read the prompt from it until EOF
	if !term.IsTerminal(fd) {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read from stdin: %w", err)
		}
		return strings.TrimSpace(string(input)), nil
	}

	capturer := repl.NewCapturer(os.Stdin, os.Stdout)
	submitName, abortName := viper.GetString("submit-key"), viper.GetString("abort-key")
	var parseErr error
	if capturer.SubmitKey, parseErr = repl.ParseKey(submitName); parseErr != nil {
		return "", parseErr
	}
	if capturer.AbortKey, parseErr = repl.ParseKey(abortName); parseErr != nil {
		return "", parseErr
	}

	reporter.Banner(fmt.Sprintf("Enter your prompt (multiline). Submit with %s, abort with %s.", submitName, abortName))

	raw, err := repl.EnableRawMode(fd)
	if err != nil {
		return "", err
	}
	defer raw.Restore()

	prompt, err := capturer.Run()
	raw.Restore() // eagerly, before anything else is printed
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(prompt), nil
}

func outputWidth(fd int) int {
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		return width
	}
	return 80
}
