// Command reelmind runs a terminal chat front end for the movie
// recommendation agent. It is a pure presentation layer: it forwards user
// lines into the engine, then renders the display entries the loop produced.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/reelmind/reelmind"
	"github.com/reelmind/reelmind/config"
	"github.com/reelmind/reelmind/logging"
	"github.com/reelmind/reelmind/model"
	modelanthropic "github.com/reelmind/reelmind/model/anthropic"
	modelopenai "github.com/reelmind/reelmind/model/openai"
	"github.com/reelmind/reelmind/session"
	"github.com/reelmind/reelmind/step"
	"github.com/reelmind/reelmind/tool/movies"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "reelmind",
	Short: "reelmind - movie recommendation agent",
	Long: "reelmind drives a structured-step reasoning model through a\n" +
		"PLAN → TOOL → OBSERVE → OUTPUT loop to recommend movies.\n" +
		"Example: Suggest a sci-fi movie under 150 minutes.",
	RunE:          runChat,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := logging.NewSlogLogger(cfg.LogLevel(), cfg.Log.Format, os.Stderr)

	m, err := buildModel(cfg)
	if err != nil {
		return err
	}

	engine := reelmind.New(m, func(o *reelmind.Options) {
		o.MaxSteps = cfg.MaxSteps
		o.Logger = logger
	})

	sessionID := uuid.NewString()
	fmt.Printf("reelmind (%s/%s) - enter your movie preferences, /reset to clear, /quit to exit\n",
		m.Info().Provider, m.Info().Name)

	rendered := 0
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/reset":
			engine.Reset(sessionID)
			rendered = 0
			fmt.Println("session cleared")
			continue
		}

		if _, err := engine.RunTurn(cmd.Context(), sessionID, line); err != nil {
			logger.Error("turn.failed", "error", err.Error())
		}
		rendered = render(engine.Display(sessionID), rendered)
	}
	return scanner.Err()
}

// render prints display entries added since the last call and returns the new
// offset.
func render(entries []session.Entry, from int) int {
	for _, e := range entries[from:] {
		if e.Origin == session.OriginUser {
			continue // the user just typed this line
		}
		fmt.Printf("[%s] %s\n", e.Tag, e.Text)
	}
	return len(entries)
}

// buildModel selects the configured provider.
func buildModel(cfg config.Config) (model.Model, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return modelopenai.NewModel(func(o *modelopenai.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
			o.Temperature = cfg.Temperature
			o.BaseURL = cfg.BaseURL
			o.APIKey = cfg.APIKey()
		}), nil
	case config.ProviderAnthropic:
		return modelanthropic.NewModel(func(o *modelanthropic.Options) {
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
			o.Temperature = cfg.Temperature
			o.APIKey = cfg.APIKey()
		}), nil
	case config.ProviderScripted:
		return demoModel(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// demoModel replays a canned recommendation flow so the command works
// offline without any API key.
func demoModel() model.Model {
	return model.NewScripted(
		step.Step{Kind: step.KindStart, Content: "Understood, looking for a match."},
		step.Step{Kind: step.KindPlan, Content: "Fetching sci-fi metadata to compare ratings and runtimes."},
		step.Step{Kind: step.KindTool, Tool: movies.Name, Input: "sci-fi"},
		step.Step{Kind: step.KindOutput, Content: "Top pick: Space Odyssey 2001 (Sci-Fi/Drama), rating 8.3, 149 min. Best rating among entries that fit a sub-150-minute runtime."},
	)
}
