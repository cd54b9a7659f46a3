package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/iishyfishyy/infragpt/internal/config"
	"github.com/iishyfishyy/infragpt/internal/executor"
	"github.com/iishyfishyy/infragpt/internal/gcloud"
	"github.com/iishyfishyy/infragpt/internal/history"
	"github.com/iishyfishyy/infragpt/internal/llm"
	"github.com/iishyfishyy/infragpt/internal/prompt"
	"github.com/iishyfishyy/infragpt/internal/ui"
)

// Exchange is one prompt/response pair kept for the lifetime of an
// interactive session.
type Exchange struct {
	Request  string
	Response string
}

// Session holds the per-invocation state: resolved config, the provider
// client chosen at resolution time, and the turn loop.
type Session struct {
	cfg    *config.Config
	client llm.Client
	hist   *history.Store // nil when history is unavailable

	in   io.Reader
	out  io.Writer
	errW io.Writer

	// conversation history, appended once per completed turn
	exchanges []Exchange

	// interaction seams, replaced in tests
	confirm      func() (ui.Action, error)
	placeholder  func(name string, info gcloud.ParamInfo) (string, error)
	continueNext func() (bool, error)
	copyText     func(text string) error
	execute      func(command string) error
}

// NewSession wires a session to the real terminal, clipboard, and shell.
func NewSession(cfg *config.Config, client llm.Client) *Session {
	return &Session{
		cfg:          cfg,
		client:       client,
		in:           os.Stdin,
		out:          os.Stdout,
		errW:         os.Stderr,
		confirm:      ui.ConfirmCommand,
		placeholder:  ui.PromptPlaceholder,
		continueNext: ui.PromptContinue,
		copyText:     clipboard.WriteAll,
		execute: func(command string) error {
			return executor.ExecuteWithDebug(command, cfg.Verbose)
		},
	}
}

// Close releases the history store, if any.
func (s *Session) Close() {
	if s.hist != nil {
		s.hist.Close()
	}
}

// RunOnce handles a single-shot invocation: one request, one completion,
// one result-handling pass.
func (s *Session) RunOnce(request string) error {
	return s.runTurn(context.Background(), request)
}

// RunInteractive reads requests in a loop until an empty line, "exit",
// "quit", or EOF. A failed turn is reported and the loop continues.
func (s *Session) RunInteractive() error {
	isTTY := false
	if f, ok := s.in.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	if isTTY {
		ui.ShowBanner(string(s.cfg.Model))
	}

	scanner := bufio.NewScanner(s.in)
	for {
		if isTTY {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "exit" || line == "quit" {
			return nil
		}

		if err := s.runTurn(context.Background(), line); err != nil {
			fmt.Fprintln(s.errW, "Error:", err)
		}
	}
}

// runTurn is one full request cycle: build prompt, complete, handle result.
func (s *Session) runTurn(ctx context.Context, request string) error {
	if s.cfg.Verbose {
		fmt.Fprintf(s.errW, "[DEBUG] Turn: generating command for %q using %s\n", request, s.cfg.Model)
	}

	text, err := s.client.Complete(ctx, prompt.ForCommand(request))
	if err != nil {
		return err
	}

	if s.cfg.Verbose {
		fmt.Fprintf(s.errW, "[DEBUG] Turn: model returned %q\n", text)
	}

	s.exchanges = append(s.exchanges, Exchange{Request: request, Response: text})
	return s.handleResult(ctx, request, text)
}

// handleResult processes the completion text: refusal, placeholder filling,
// and the copy/run/skip choice per command.
func (s *Session) handleResult(ctx context.Context, request, text string) error {
	commands := prompt.SplitCommands(text)
	if len(commands) == 0 {
		ui.ShowWarning("No commands generated")
		return nil
	}

	if commands[0] == prompt.Refusal {
		fmt.Fprintln(s.out, prompt.Refusal)
		return nil
	}

	if len(commands) > 1 {
		ui.ShowInfo(fmt.Sprintf("Generated %d commands", len(commands)))
	}

	for i, command := range commands {
		command, err := s.fillPlaceholders(ctx, command)
		if err != nil {
			return err
		}

		fmt.Fprintln(s.out, command)

		action, err := s.confirm()
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}

		executed := false
		switch action {
		case ui.ActionCopy:
			if err := s.copyText(command); err != nil {
				ui.ShowError(fmt.Sprintf("Failed to copy to clipboard: %v", err))
			} else {
				ui.ShowSuccess("Command copied to clipboard!")
			}
		case ui.ActionRun:
			executed = true
			if err := s.execute(command); err != nil {
				ui.ShowError(fmt.Sprintf("Command failed: %v", err))
			}
		case ui.ActionSkip:
			// nothing to do
		}

		s.record(request, command, executed)

		if executed && i < len(commands)-1 {
			cont, err := s.continueNext()
			if err != nil {
				return err
			}
			if !cont {
				break
			}
		}
	}

	return nil
}

// fillPlaceholders prompts the user for every [PLACEHOLDER] in the command,
// asking the model for parameter descriptions first. A failed description
// call degrades to plain prompts.
func (s *Session) fillPlaceholders(ctx context.Context, command string) (string, error) {
	names := gcloud.Placeholders(command)
	if len(names) == 0 {
		return command, nil
	}

	info := map[string]gcloud.ParamInfo{}
	if text, err := s.client.Complete(ctx, prompt.ForParameters(command)); err == nil {
		if parsed, err := gcloud.ParseParamInfo(text); err == nil {
			info = parsed
		} else if s.cfg.Verbose {
			fmt.Fprintf(s.errW, "[DEBUG] Params: could not parse parameter info: %v\n", err)
		}
	} else if s.cfg.Verbose {
		fmt.Fprintf(s.errW, "[DEBUG] Params: parameter info call failed: %v\n", err)
	}

	ui.ShowInfo("Command requires the following parameters:")

	values := make(map[string]string, len(names))
	for _, name := range names {
		value, err := s.placeholder(name, info[name])
		if err != nil {
			return "", fmt.Errorf("failed to read parameter %s: %w", name, err)
		}
		values[name] = value
	}

	return gcloud.Fill(command, values), nil
}

// record appends the turn to the history store; failures are warnings only.
func (s *Session) record(request, command string, executed bool) {
	if s.hist == nil {
		return
	}
	if err := s.hist.Append(history.Turn{Request: request, Command: command, Executed: executed}); err != nil {
		fmt.Fprintf(s.errW, "Warning: failed to save history: %v\n", err)
	}
}
