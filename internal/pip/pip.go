package pip

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Client invokes the pip executable of a single environment. The zero value
// is not usable; create clients with New.
type Client struct {
	// Path is the pip executable to invoke.
	Path string
	// Env is the environment for spawned processes. Nil inherits the
	// current process environment.
	Env []string
	// Out receives streamed install output. Nil streams to os.Stdout.
	Out io.Writer
	// Log receives progress messages. Nil falls back to a default logger
	// writing to stderr.
	Log *logrus.Logger
}

// New creates a pip client for the given executable path.
func New(path string) *Client {
	return &Client{Path: path}
}

func (c *Client) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

func (c *Client) stream() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// Install installs a package spec ("name" or "name==version").
// Output is streamed to Out.
func (c *Client) Install(spec string) error {
	c.logger().Infof("Installing %s using pip", spec)
	_, _, err := c.run(true, "install", spec)
	return err
}

// InstallUpgrade installs the latest release of a package.
func (c *Client) InstallUpgrade(name string) error {
	c.logger().Infof("Upgrading %s using pip", name)
	_, _, err := c.run(true, "install", name, "--upgrade")
	return err
}

// Show returns pip's package information output for an installed package.
// A failure means the package is not installed.
func (c *Client) Show(name string) (string, error) {
	stdout, _, err := c.run(false, "show", name)
	if err != nil {
		return "", err
	}
	return stdout, nil
}

// Freeze returns the full freeze output: one "name==version" line per
// installed package.
func (c *Client) Freeze() (string, error) {
	stdout, _, err := c.run(false, "freeze")
	if err != nil {
		return "", err
	}
	return stdout, nil
}

// Version returns pip's own version line.
func (c *Client) Version() (string, error) {
	stdout, _, err := c.run(false, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}
