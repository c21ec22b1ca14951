package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var (
	// ErrTimeout is returned when a process outlives its timeout.
	ErrTimeout = errors.New("timeout exceeded")
	// ErrInterrupted is returned when the run is cancelled while a process
	// is still running.
	ErrInterrupted = errors.New("interrupted")
)

// waitDelay bounds how long output pipes are drained once the process is
// gone, in case a grandchild inherited them.
const waitDelay = 2 * time.Second

// SpawnError reports a process that could not be started.
type SpawnError struct {
	Binary string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("cannot execute %s: %v", e.Binary, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// processOutput is what a finished process left behind.
type processOutput struct {
	stdout   string
	stderr   string
	exitCode int
}

// runProcess executes binary with args and waits for it, at most timeout
// when timeout is positive. stdin is written to the process and closed when
// set; otherwise the process reads from the null device. The process group
// is killed on every exit path, so background children never outlive the
// run. On timeout or cancellation whatever output was captured so far is
// returned along with the error.
func runProcess(ctx context.Context, binary string, args []string, stdin *string, timeout time.Duration) (processOutput, error) {
	if err := ctx.Err(); err != nil {
		return processOutput{}, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = strings.NewReader(*stdin)
	}
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return processOutput{}, &SpawnError{Binary: binary, Err: err}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case err := <-done:
		// Whatever the process left running in its group goes with it.
		killProcessGroup(cmd)
		out := processOutput{stdout: stdout.String(), stderr: stderr.String()}
		var exitErr *exec.ExitError
		switch {
		case err == nil, errors.Is(err, exec.ErrWaitDelay), errors.As(err, &exitErr):
			out.exitCode = exitCode(cmd.ProcessState)
			return out, nil
		default:
			return out, err
		}

	case <-expired:
		killProcessGroup(cmd)
		<-done
		return processOutput{stdout: stdout.String(), stderr: stderr.String(), exitCode: -1}, ErrTimeout

	case <-ctx.Done():
		killProcessGroup(cmd)
		<-done
		return processOutput{stdout: stdout.String(), stderr: stderr.String(), exitCode: -1},
			fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	}
}
