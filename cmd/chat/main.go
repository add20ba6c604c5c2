package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"avika/internal/catalog"
	"avika/internal/config"
	"avika/internal/model"
	"avika/internal/repository"
	"avika/internal/service"
)

var (
	useMock     bool
	catalogPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chat",
		Short: "Run an assessment conversation in the terminal",
		Long: `Starts an interactive well-being assessment in the terminal.
Type your replies at the prompt; the assessment completes when every
questionnaire item has been covered. Type /quit to abandon.`,
		RunE: runChat,
	}

	rootCmd.Flags().BoolVar(&useMock, "mock", false, "use the mock provider instead of the Gemini API")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a YAML catalog file (built-in instrument when empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var provider service.Provider
	if useMock || !cfg.AI.IsEnabled() {
		provider = service.NewMockProvider()
		fmt.Println("(mock provider)")
	} else {
		provider = service.NewGeminiProvider(cfg.AI)
	}

	store := repository.NewSessionStore()
	reportSvc := service.NewReportService(cat)
	dialogueSvc := service.NewDialogueService(cat, store, provider, reportSvc, cfg.AI, cfg.Policy)

	ctx := context.Background()

	sess, err := dialogueSvc.StartSession(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("avika: %s\n", sess.Transcript[len(sess.Transcript)-1].Text)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you: ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "/quit" {
			return dialogueSvc.Abandon(sess.ID)
		}

		res, err := dialogueSvc.HandleTurn(ctx, sess.ID, text)
		if err != nil {
			if errors.Is(err, service.ErrSessionComplete) {
				break
			}
			return err
		}

		fmt.Printf("avika: %s\n", res.Reply)
		fmt.Printf("       [%d/%d items covered]\n", res.Progress.Covered, res.Progress.Total)

		if res.Phase == model.PhaseComplete {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	report, err := dialogueSvc.Report(sess.ID, true)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("=== Assessment Report ===")
	for _, cs := range report.Categories {
		if cs.Insufficient {
			fmt.Printf("%-28s insufficient data\n", cs.Name)
			continue
		}
		fmt.Printf("%-28s %.1f (%d/%d items)\n", cs.Name, cs.Display, cs.CoveredItems, cs.TotalItems)
	}
	fmt.Printf("%-28s %.1f\n", "Overall", report.OverallDisp)
	if report.Partial {
		fmt.Println("(partial: not all items were covered)")
	}
	return nil
}
