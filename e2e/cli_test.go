package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/connect4-solver/internal/api"
	"github.com/mcoot/connect4-solver/internal/factory"
)

const drawnGame = "133333311111244444422222577777755555666666"

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

type cliResult struct {
	stdout   string
	stderr   string
	exitCode int
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(projectRoot, "bin", "c4solve-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/c4solve")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	fullArgs := append([]string{"--server", r.serverURL}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := cliResult{}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.exitCode = exitErr.ExitCode()
	case err != nil:
		t.Fatalf("failed to run CLI: %v", err)
	}
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{Logger: logger, SolveTimeout: 10 * time.Second})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		Clock:         app.Clock,
		SolverService: app.SolverService,
	})
	server := api.NewServer(router, api.DefaultServerConfig(), logger)

	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + listener.Addr().String()
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type healthResponse struct {
	Status string `json:"status"`
}

type solveResponse struct {
	Sequence string `json:"sequence"`
	Mode     string `json:"mode"`
	Score    int    `json:"score"`
	Outcome  string `json:"outcome"`
	Nodes    uint64 `json:"nodes"`
}

type positionResponse struct {
	Moves         int      `json:"moves"`
	CurrentPlayer string   `json:"current_player"`
	Board         []string `json:"board"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	res := cli.run(t, "", "-o", "json", "health")
	require.Equal(t, 0, res.exitCode, "stderr: %s", res.stderr)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_Batch(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	input := "121212\n31415\n1111111\n" + drawnGame + "\n12a\n"
	res := cli.run(t, input, "batch")
	require.Equal(t, 0, res.exitCode, "malformed lines must not fail the batch")

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 5)

	fields := strings.Fields(lines[0])
	require.Len(t, fields, 4)
	assert.Equal(t, []string{"121212", "18", "1"}, fields[:3])

	fields = strings.Fields(lines[1])
	require.Len(t, fields, 4)
	assert.Equal(t, []string{"31415", "-18", "8"}, fields[:3])

	assert.Equal(t, "", lines[2])
	assert.Equal(t, []string{drawnGame, "0", "1"}, strings.Fields(lines[3])[:3])
	assert.Equal(t, "", lines[4])

	assert.Equal(t,
		"Line 3: Invalid move 7 \"1111111\"\nLine 5: Invalid move 3 \"12a\"\n",
		res.stderr,
	)
}

func TestCLI_BatchWeak(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	res := cli.run(t, "31415\r\n", "batch", "--weak")
	require.Equal(t, 0, res.exitCode, "stderr: %s", res.stderr)

	fields := strings.Fields(res.stdout)
	require.Len(t, fields, 4)
	assert.Equal(t, "31415", fields[0])
	assert.Equal(t, "-18", fields[1])
}

func TestCLI_GenerateIntoBatch(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	gen := cli.run(t, "", "generate", "-n", "3", "-m", "30")
	require.Equal(t, 0, gen.exitCode, "stderr: %s", gen.stderr)

	res := cli.run(t, gen.stdout, "batch")
	require.Equal(t, 0, res.exitCode, "stderr: %s", res.stderr)
	assert.Empty(t, res.stderr)

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, strings.Fields(line), 4, line)
	}
}

func TestCLI_SolveLocal(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	res := cli.run(t, "", "-o", "json", "solve", "31415")
	require.Equal(t, 0, res.exitCode, "stderr: %s", res.stderr)

	var resp solveResponse
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, -18, resp.Score)
	assert.Equal(t, "loss", resp.Outcome)
	assert.Equal(t, uint64(8), resp.Nodes)
}

func TestCLI_SolveRemote(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	res := cli.run(t, "", "-o", "json", "solve", "--remote", "121212")
	require.Equal(t, 0, res.exitCode, "stderr: %s", res.stderr)

	var resp solveResponse
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "121212", resp.Sequence)
	assert.Equal(t, 18, resp.Score)
	assert.Equal(t, "win", resp.Outcome)
}

func TestCLI_Show(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	res := cli.run(t, "", "-o", "json", "show", "443")
	require.Equal(t, 0, res.exitCode, "stderr: %s", res.stderr)

	var resp positionResponse
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, 3, resp.Moves)
	assert.Equal(t, "O", resp.CurrentPlayer)
	assert.Equal(t, "..XX...", resp.Board[5])
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Invalid sequence solved locally
	res := cli.run(t, "", "solve", "1111111")
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "column is full")

	// Invalid sequence solved remotely
	res = cli.run(t, "", "solve", "--remote", "9")
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "INVALID_MOVE")

	// Unknown output format
	res = cli.run(t, "", "-o", "xml", "show", "4")
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "invalid output format")
}
