// Package console provides terminal versions of the dashboard collaborators
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Notifier prints alerts to a terminal
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
	c   *color.Color
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out, c: color.New(color.FgYellow, color.Bold)}
}

func (n *Notifier) Alert(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = n.c.Fprintln(n.out, message)
}

// Confirmer asks yes/no questions on a terminal. With autoYes set it never
// reads input and always agrees.
type Confirmer struct {
	mu      sync.Mutex
	in      *bufio.Reader
	out     io.Writer
	autoYes bool
}

func NewConfirmer(in io.Reader, out io.Writer, autoYes bool) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out, autoYes: autoYes}
}

func (c *Confirmer) Confirm(message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.autoYes {
		return true
	}

	fmt.Fprintf(c.out, "%s %s ", message, color.CyanString("[y/N]"))
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// ModalOpener has no dialogs to show; it records the request in the log
type ModalOpener struct {
	log *logrus.Logger
}

func NewModalOpener(log *logrus.Logger) *ModalOpener {
	return &ModalOpener{log: log}
}

func (m *ModalOpener) Open(name string) {
	m.log.WithField("modal", name).Info("modal opened")
}
