package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JaimeStill/go-agents/pkg/agent"
	agtconfig "github.com/JaimeStill/go-agents/pkg/config"
)

type agentsTranscriber struct {
	agent   agent.Agent
	model   string
	detail  string
	timeout time.Duration
	logger  *slog.Logger
}

func newAgents(cfg *Config, logger *slog.Logger) (Transcriber, error) {
	raw, err := agentConfigJSON(cfg)
	if err != nil {
		return nil, err
	}

	agentCfg := agtconfig.DefaultAgentConfig()

	var userCfg agtconfig.AgentConfig
	if err := json.Unmarshal(raw, &userCfg); err != nil {
		return nil, fmt.Errorf("parse agent config: %w", err)
	}

	agentCfg.Merge(&userCfg)

	a, err := agent.New(&agentCfg)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	return &agentsTranscriber{
		agent:   a,
		model:   cfg.Model,
		detail:  cfg.Detail,
		timeout: cfg.TimeoutDuration(),
		logger:  logger,
	}, nil
}

// agentConfigJSON renders cfg in the go-agents AgentConfig JSON shape.
func agentConfigJSON(cfg *Config) ([]byte, error) {
	options := map[string]any{}
	if cfg.Token != "" {
		options["token"] = cfg.Token
	}

	return json.Marshal(map[string]any{
		"name": "handnotes-transcriber",
		"provider": map[string]any{
			"name":     cfg.AgentProvider,
			"base_url": cfg.BaseURL,
			"options":  options,
		},
		"model": map[string]any{
			"name": cfg.Model,
			"capabilities": map[string]any{
				"vision": map[string]any{"detail": cfg.Detail},
			},
		},
	})
}

func (t *agentsTranscriber) Model() string {
	return t.model
}

func (t *agentsTranscriber) Transcribe(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	opts := map[string]any{"detail": t.detail}
	if req.Detail != "" {
		opts["detail"] = req.Detail
	}
	if req.JSON {
		opts["response_format"] = map[string]any{"type": "json_object"}
	}

	start := time.Now()
	resp, err := t.agent.Vision(ctx, req.Instruction, req.Images, opts)
	if err != nil {
		return nil, fmt.Errorf("vision request: %w", err)
	}

	text := strings.TrimSpace(resp.Content())
	t.logger.Debug("vision response received", "model", t.model, "duration", time.Since(start), "chars", len(text))

	if text == "" {
		return nil, ErrEmptyResponse
	}

	return &Response{Text: text, Model: t.model}, nil
}
