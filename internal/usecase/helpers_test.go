package usecase

import (
	"io"
	"sync"
	"testing"
	"time"

	"smart-clinic-portal/config"
	"smart-clinic-portal/internal/client"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newAPI(t *testing.T, baseURL, style string) *client.Client {
	t.Helper()
	c, err := client.New(config.APIConfig{BaseURL: baseURL, Timeout: 2 * time.Second, AppointmentsStyle: style}, quietLogger())
	require.NoError(t, err)
	return c
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Alert(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func (n *recordingNotifier) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.messages) == 0 {
		return ""
	}
	return n.messages[len(n.messages)-1]
}

type stubConfirmer struct {
	answer bool
	asked  []string
}

func (c *stubConfirmer) Confirm(message string) bool {
	c.asked = append(c.asked, message)
	return c.answer
}

type recordingModals struct {
	opened []string
}

func (m *recordingModals) Open(name string) {
	m.opened = append(m.opened, name)
}
