// Package mcpserve exposes the box over MCP so editor agents can build
// and inspect it without shelling out themselves.
package mcpserve

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"devinabox/internal/checkout"
	"devinabox/internal/doctor"
	"devinabox/internal/format"
	"devinabox/internal/launcher"
	"devinabox/internal/logging"
	"devinabox/internal/platform"
	"devinabox/internal/toolchain"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// buildLogTail caps how much command output a build_interpreter result
// carries back to the client.
const buildLogTail = 4096

// Server wraps the MCP SDK server around one box.
type Server struct {
	MCPServer *sdkmcp.Server

	// BoxRoot is the directory holding the cpython checkout. NewServer
	// captures the current working directory, which is where a box
	// invocation always runs.
	BoxRoot string

	// Family is classified once at server start and reused by every
	// tool call.
	Family platform.Family

	// NewRunner builds the runner a build call uses. Build output must
	// stay off os.Stdout: the stdio transport owns it. Tests swap this
	// to avoid spawning a compiler.
	NewRunner func(out io.Writer) toolchain.Runner
}

// NewServer creates an MCP server with build, verify and report tools.
func NewServer() *Server {
	cwd, _ := os.Getwd()
	s := &Server{
		BoxRoot: cwd,
		Family:  platform.Detect(),
		NewRunner: func(out io.Writer) toolchain.Runner {
			return &toolchain.ExecRunner{Stdout: out, Stderr: out}
		},
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "devinabox", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "build_interpreter",
		Description: "Configure and build the CPython checkout in the box, then check that the expected binary exists. Returns the verdict plus the tail of the build output.",
	}, s.handleBuildInterpreter)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "verify_interpreter",
		Description: "Report whether a built interpreter is present, without running any build commands.",
	}, s.handleVerifyInterpreter)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "environment_report",
		Description: "Inspect the box layout: checkouts, built docs, interpreter and tools. Returns a markdown table plus the missing required pieces.",
	}, s.handleEnvironmentReport)
}

// --- Tool input/output types ---

type buildInterpreterInput struct{}

type buildInterpreterOutput struct {
	Family           string `json:"family"`
	Outcome          string `json:"outcome"`
	BinaryPath       string `json:"binary_path,omitempty"`
	ConfigureSkipped bool   `json:"configure_skipped"`
	BuildAttempted   bool   `json:"build_attempted"`
	BuildLog         string `json:"build_log,omitempty"`
	Error            string `json:"error,omitempty"`
}

type verifyInterpreterInput struct{}

type verifyInterpreterOutput struct {
	Outcome    string `json:"outcome"`
	BinaryPath string `json:"binary_path,omitempty"`
	SizeBytes  int64  `json:"size_bytes,omitempty"`
	Size       string `json:"size,omitempty"`
}

type environmentReportInput struct{}

type environmentReportOutput struct {
	Family   string   `json:"family"`
	Healthy  bool     `json:"healthy"`
	Missing  []string `json:"missing,omitempty"`
	Markdown string   `json:"markdown"`
}

// --- Tool handlers ---

// A failed build is a result, not a protocol error: the output carries
// the command error so the client still sees the verification verdict.
func (s *Server) handleBuildInterpreter(ctx context.Context, _ *sdkmcp.CallToolRequest, _ buildInterpreterInput) (*sdkmcp.CallToolResult, buildInterpreterOutput, error) {
	logger := logging.New("mcp")
	logger.Info("build_interpreter", "root", s.BoxRoot, "family", s.Family)

	var buf bytes.Buffer
	l := launcher.New(s.NewRunner(&buf), &buf, s.BoxRoot)
	res, err := l.Run(ctx, s.Family)

	out := buildInterpreterOutput{
		Family:           string(res.Family),
		Outcome:          string(res.Outcome),
		BinaryPath:       res.BinaryPath,
		ConfigureSkipped: res.ConfigureSkipped,
		BuildAttempted:   res.BuildAttempted,
		BuildLog:         tail(buf.String(), buildLogTail),
	}
	if err != nil {
		out.Error = err.Error()
		logger.Warn("build_interpreter failed", "error", err)
	}
	return nil, out, nil
}

func (s *Server) handleVerifyInterpreter(_ context.Context, _ *sdkmcp.CallToolRequest, _ verifyInterpreterInput) (*sdkmcp.CallToolResult, verifyInterpreterOutput, error) {
	out := verifyInterpreterOutput{Outcome: string(launcher.NotVerified)}
	path, ok := checkout.Locate(s.BoxRoot, s.Family)
	if !ok {
		return nil, out, nil
	}
	out.Outcome = string(launcher.Verified)
	out.BinaryPath = path
	if info, err := os.Stat(path); err == nil {
		out.SizeBytes = info.Size()
		out.Size = format.FmtBytes(info.Size())
	}
	return nil, out, nil
}

func (s *Server) handleEnvironmentReport(ctx context.Context, _ *sdkmcp.CallToolRequest, _ environmentReportInput) (*sdkmcp.CallToolResult, environmentReportOutput, error) {
	rep, err := doctor.Run(ctx, s.BoxRoot, s.Family)
	if err != nil {
		return nil, environmentReportOutput{}, fmt.Errorf("inspect box: %w", err)
	}
	return nil, environmentReportOutput{
		Family:   string(rep.Family),
		Healthy:  rep.Healthy(),
		Missing:  rep.Missing(),
		Markdown: doctor.Render(rep, format.Markdown),
	}, nil
}

// tail returns the last n bytes of s.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
