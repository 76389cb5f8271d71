package pip

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// run executes pip with the given arguments. Stdout and stderr are drained
// by separate goroutines so a process interleaving output on both streams
// cannot deadlock on a full OS pipe buffer; both drains must reach EOF
// before the process is reaped. When stream is true, stdout is additionally
// copied to the client's output writer as it arrives.
func (c *Client) run(stream bool, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(c.Path, args...)
	cmd.Env = c.Env

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", "", fmt.Errorf("pip %s: %w", strings.Join(args, " "), err)
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("pip %s: %w", strings.Join(args, " "), err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("pip %s: %w", strings.Join(args, " "), err)
	}

	var outBuf, errBuf bytes.Buffer
	var outDst io.Writer = &outBuf
	if stream {
		outDst = io.MultiWriter(&outBuf, c.stream())
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(outDst, outPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(&errBuf, errPipe)
		return err
	})
	drainErr := g.Wait()

	waitErr := cmd.Wait()
	if waitErr != nil {
		msg := strings.TrimSpace(errBuf.String())
		if msg != "" {
			return outBuf.String(), errBuf.String(),
				fmt.Errorf("pip %s: %w: %s", strings.Join(args, " "), waitErr, msg)
		}
		return outBuf.String(), errBuf.String(),
			fmt.Errorf("pip %s: %w", strings.Join(args, " "), waitErr)
	}
	if drainErr != nil {
		return outBuf.String(), errBuf.String(),
			fmt.Errorf("pip %s: draining output: %w", strings.Join(args, " "), drainErr)
	}

	return outBuf.String(), errBuf.String(), nil
}

// ExitCode extracts the process exit code from an error returned by a
// client method. Returns -1 if the error does not carry an exit status.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
