package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/forms-cli/internal/keyword"
	"github.com/mj1618/forms-cli/internal/logger"
	"github.com/mj1618/forms-cli/internal/platform"
	"gopkg.in/yaml.v3"
)

// resultToText serializes a result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

// keywordHandler runs kw under the provider lock and saves the form
// afterwards when kw mutated it.
func (s *Server) keywordHandler(kw keyword.Keyword) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := keyword.Params(request.GetArguments())

		s.providerMu.Lock()
		defer s.providerMu.Unlock()

		result, err := s.session.Execute(kw.Name, params)
		if err != nil {
			return mcp.NewToolResultError(resultToText(result)), nil
		}
		if kw.Mutates {
			if err := s.save(); err != nil {
				result.OK = false
				result.Error = err.Error()
				return mcp.NewToolResultError(resultToText(result)), nil
			}
		}
		return mcp.NewToolResultText(resultToText(result)), nil
	}
}

func (s *Server) handleRead(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := keyword.Params(request.GetArguments())
	prune, err := params.Bool("prune", false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	flat, err := params.Bool("flat", false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := platform.ReadOptions{
		Types: splitTypes(params.String("types", "")),
		Text:  params.String("text", ""),
		Prune: prune,
	}
	if bbox := params.String("bbox", ""); bbox != "" {
		b, err := platform.ParseBBox(bbox)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts.BBox = b
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	v, err := s.session.Read(opts, flat)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(v)), nil
}

func (s *Server) handleDo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	stopOnError, err := keyword.Params(params).Bool("stop-on-error", true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stepsRaw, ok := params["steps"]
	if !ok {
		return mcp.NewToolResultError("steps parameter is required"), nil
	}
	arr, ok := stepsRaw.([]interface{})
	if !ok {
		return mcp.NewToolResultError("steps must be an array"), nil
	}

	steps := make([]keyword.Step, 0, len(arr))
	for i, item := range arr {
		m, ok := item.(map[string]interface{})
		if !ok || len(m) != 1 {
			return mcp.NewToolResultError(fmt.Sprintf("step %d must be an object with exactly one keyword", i+1)), nil
		}
		for name, raw := range m {
			p, _ := raw.(map[string]interface{})
			if p == nil {
				p = map[string]interface{}{}
			}
			steps = append(steps, keyword.Step{Keyword: name, Params: p})
		}
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result := s.session.RunSteps(steps, stopOnError)
	if result.Completed > 0 {
		if err := s.save(); err != nil {
			result.OK = false
			result.Error = err.Error()
		}
	}
	if !result.OK {
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

// save writes the form to the configured path. The caller holds providerMu.
func (s *Server) save() error {
	if s.savePath == "" {
		return nil
	}
	if err := s.session.Save(s.savePath); err != nil {
		return fmt.Errorf("save form: %w", err)
	}
	logger.Debug("Saved form to %s", s.savePath)
	return nil
}

// splitTypes splits the comma-separated types argument of read.
func splitTypes(s string) []string {
	var types []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
