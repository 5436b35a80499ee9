package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/mj1618/uia-mcp/internal/finder"
	"github.com/mj1618/uia-mcp/internal/model"
	"github.com/mj1618/uia-mcp/internal/output"
	"github.com/mj1618/uia-mcp/internal/platform"
)

var errNoInputter = errors.New("input simulation not available on this platform")

// toolResult serializes a result as JSON text. Results reporting a fault are
// flagged as tool errors; misses and timeouts are not.
func toolResult(v interface{}, success bool) (*mcp.CallToolResult, error) {
	text, err := output.JSON(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !success {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) elementResult(res output.ElementResult) (*mcp.CallToolResult, error) {
	return toolResult(res, res.Success)
}

// find runs a single Matcher pass and formats the outcome.
func (s *Server) find(ctx context.Context, sel model.Selector) (*mcp.CallToolResult, error) {
	m, err := s.finder.Find(ctx, sel)
	if err != nil {
		s.logger.Error("find failed", zap.Stringer("selector", sel), zap.Error(err))
		return s.elementResult(s.format.FromFault(output.Describe(sel), err))
	}
	return s.elementResult(s.format.FromMatch(sel, m))
}

func (s *Server) handleFindByText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.find(ctx, model.Text(stringParam(request.GetArguments(), "text", "")))
}

func (s *Server) handleFindByClassName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.find(ctx, model.ClassName(stringParam(request.GetArguments(), "className", "")))
}

func (s *Server) handleFindByAutomationID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.find(ctx, model.AutomationID(stringParam(request.GetArguments(), "automationId", "")))
}

func (s *Server) handleGetElementProperties(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	if !hasParam(params, "x") || !hasParam(params, "y") {
		return s.elementResult(s.format.FromFault("point", errors.New("x and y are required")))
	}
	x, err := intParam(params, "x", 0)
	if err != nil {
		return s.elementResult(s.format.FromFault("point", err))
	}
	y, err := intParam(params, "y", 0)
	if err != nil {
		return s.elementResult(s.format.FromFault("point", err))
	}

	el, err := s.finder.At(x, y)
	if err != nil {
		s.logger.Error("hit-test failed", zap.Int("x", x), zap.Int("y", y), zap.Error(err))
		return s.elementResult(s.format.FromFault(fmt.Sprintf("{%d,%d}", x, y), err))
	}
	return s.elementResult(s.format.FromElement(x, y, el))
}

func (s *Server) handleWaitForElement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	value := stringParam(params, "selector", "")
	rawKind := stringParam(params, "selectorType", "text")

	kind, err := model.ParseSelectorKind(rawKind)
	if err != nil {
		res := s.format.FromWait(finder.WaitOutcome{
			Selector: model.Selector{Kind: model.SelectorKind(rawKind), Value: value},
			LastErr:  err,
		})
		return toolResult(res, res.Success)
	}
	sel := model.Selector{Kind: kind, Value: value}

	timeout := s.cfg.DefaultTimeout
	if hasParam(params, "timeoutMs") {
		ms, err := intParam(params, "timeoutMs", 0)
		if err != nil {
			res := s.format.FromWait(finder.WaitOutcome{Selector: sel, LastErr: err})
			return toolResult(res, res.Success)
		}
		timeout = time.Duration(ms) * time.Millisecond
	}

	out := s.finder.WaitFor(ctx, sel, timeout)
	s.logger.Debug("wait finished",
		zap.Stringer("selector", sel),
		zap.Bool("found", out.Found),
		zap.Bool("timed_out", out.TimedOut),
		zap.Bool("cancelled", out.Cancelled),
		zap.Int("attempts", out.Attempts),
		zap.Duration("elapsed", out.Elapsed))

	res := s.format.FromWait(out)
	return toolResult(res, res.Success)
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := stringParam(request.GetArguments(), "filter", "")

	windows, err := finder.Windows(s.provider.Reader)
	if err != nil {
		s.logger.Error("list windows failed", zap.Error(err))
		return s.elementResult(s.format.FromFault("window list", err))
	}
	return toolResult(output.FromWindows(model.FilterWindows(windows, filter)), true)
}

// resolve parses the selector arguments of an input action and finds its
// target.
func (s *Server) resolve(ctx context.Context, params map[string]interface{}) (model.Selector, *model.Element, error) {
	kind, err := model.ParseSelectorKind(stringParam(params, "selectorType", "text"))
	if err != nil {
		return model.Selector{}, nil, err
	}
	sel := model.Selector{Kind: kind, Value: stringParam(params, "selector", "")}
	el, err := s.finder.Resolve(ctx, sel)
	return sel, el, err
}

// inputAction resolves the target under providerMu, then runs act at the
// element's centre.
func (s *Server) inputAction(ctx context.Context, request mcp.CallToolRequest, action string, act func(in platform.Inputter, x, y int) error) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	subject := fmt.Sprintf("%s=%q", stringParam(params, "selectorType", "text"), stringParam(params, "selector", ""))

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.Inputter == nil {
		return s.actionFault(action, subject, errNoInputter)
	}

	sel, el, err := s.resolve(ctx, params)
	if err != nil {
		return s.actionFault(action, subject, err)
	}
	if el == nil {
		res := output.ActionResult{Action: action, ElementResult: s.format.FromMatch(sel, nil)}
		return toolResult(res, true)
	}

	x, y := el.Center()
	if err := act(s.provider.Inputter, x, y); err != nil {
		s.logger.Error("input action failed", zap.String("action", action), zap.Stringer("selector", sel), zap.Error(err))
		return s.actionFault(action, output.Describe(sel), err)
	}
	res := output.ActionResult{
		ElementResult: output.ElementResult{Success: true, Found: true, Element: output.Info(*el)},
		Action:        action,
		X:             x,
		Y:             y,
	}
	return toolResult(res, true)
}

func (s *Server) actionFault(action, subject string, err error) (*mcp.CallToolResult, error) {
	res := output.ActionResult{Action: action, ElementResult: s.format.FromFault(subject, err)}
	return toolResult(res, false)
}

func (s *Server) handleClickElement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	button, err := platform.ParseMouseButton(stringParam(params, "button", "left"))
	if err != nil {
		return s.actionFault("click", stringParam(params, "selector", ""), err)
	}
	count := 1
	if boolParam(params, "double", false) {
		count = 2
	}
	return s.inputAction(ctx, request, "click", func(in platform.Inputter, x, y int) error {
		return in.Click(x, y, button, count)
	})
}

func (s *Server) handleTypeIntoElement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return s.actionFault("type", stringParam(params, "selector", ""), errors.New("text is required"))
	}
	delay, err := intParam(params, "delay", 0)
	if err != nil {
		return s.actionFault("type", stringParam(params, "selector", ""), err)
	}
	return s.inputAction(ctx, request, "type", func(in platform.Inputter, x, y int) error {
		if err := in.Click(x, y, platform.MouseLeft, 1); err != nil {
			return fmt.Errorf("focus target: %w", err)
		}
		return in.TypeText(text, delay)
	})
}
