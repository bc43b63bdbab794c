package logic

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"io"
	"os"
	"sync"
	"twitter_webview/dto"
	"twitter_webview/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_host.go -package mocks twitter_webview/logic IHost

const maxHostLineLen = 1024 * 1024

var ErrHostClosed = errors.New("host input is closed")

// IHost is the editor on the other end of stdin/stdout.
type IHost interface {
	Ready(serviceUrl string)
	ShowInfo(msg string)
	ShowError(msg string)
	OpenDocument(uri string)
	RefreshDocument(uri string)
	// Prompt asks for a line of input. ok is false if the user dismissed the prompt.
	Prompt(ctx context.Context, prompt, placeholder, value string) (res string, ok bool, err error)
	// Choose asks the user to pick one of options. An empty result means nothing was picked.
	Choose(ctx context.Context, message string, options ...string) (string, error)
}

// StreamHost talks to the host with one JSON object per line.
// Requests that expect an answer carry an ID; the reply echoes it.
type StreamHost struct {
	logger    shared.ILogger
	settings  shared.ISettings
	in        io.Reader
	out       io.Writer
	outMu     sync.Mutex
	pendingMu sync.Mutex
	pending   map[string]chan *dto.HostReply
	closed    bool
}

func NewHost(lc fx.Lifecycle, logger shared.ILogger, settings shared.ISettings) IHost {
	res := NewStreamHost(os.Stdin, os.Stdout, logger, settings)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go res.Listen()
			return nil
		},
	})
	return res
}

func NewStreamHost(in io.Reader, out io.Writer, logger shared.ILogger, settings shared.ISettings) *StreamHost {
	return &StreamHost{
		logger:   logger,
		settings: settings,
		in:       in,
		out:      out,
		pending:  make(map[string]chan *dto.HostReply),
	}
}

// Listen reads host messages until the input is closed.
func (h *StreamHost) Listen() {
	scanner := bufio.NewScanner(h.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxHostLineLen)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var reply dto.HostReply
		if err := json.Unmarshal(line, &reply); err != nil {
			h.logger.Warnf("Ignoring malformed host message: %v", err)
			continue
		}
		h.handle(&reply)
	}
	if err := scanner.Err(); err != nil {
		h.logger.Errorf("Host input failed: %v", err)
	}
	h.logger.Info("Host input closed")
	h.failPending()
}

// failPending releases every request still waiting for an answer; later requests fail right away.
func (h *StreamHost) failPending() {
	h.pendingMu.Lock()
	defer h.pendingMu.Unlock()
	h.closed = true
	for id, ch := range h.pending {
		close(ch)
		delete(h.pending, id)
	}
}

func (h *StreamHost) handle(reply *dto.HostReply) {
	switch reply.Type {
	case dto.HostMsgReply:
		h.pendingMu.Lock()
		ch, found := h.pending[reply.Id]
		delete(h.pending, reply.Id)
		h.pendingMu.Unlock()
		if !found {
			h.logger.Warnf("No pending request for host reply %s", reply.Id)
			return
		}
		ch <- reply
	case dto.HostMsgSettings:
		if reply.NoMedia != nil {
			h.settings.SetNoMedia(*reply.NoMedia)
		}
		if reply.AutoPlay != nil {
			h.settings.SetAutoPlay(*reply.AutoPlay)
		}
		h.logger.Infof("Settings updated: no media %v, autoplay %v", h.settings.NoMedia(), h.settings.AutoPlay())
	default:
		h.logger.Warnf("Unknown host message type '%s'", reply.Type)
	}
}

func (h *StreamHost) send(msg *dto.HostMessage) {
	msgJson, err := json.Marshal(msg)
	if err != nil {
		h.logger.Errorf("Failed to serialize host message: %v", err)
		return
	}
	h.outMu.Lock()
	defer h.outMu.Unlock()
	if _, err = h.out.Write(append(msgJson, '\n')); err != nil {
		h.logger.Errorf("Failed to write host message: %v", err)
	}
}

func (h *StreamHost) request(ctx context.Context, msg *dto.HostMessage) (*dto.HostReply, error) {
	msg.Id = uuid.NewString()
	ch := make(chan *dto.HostReply, 1)
	h.pendingMu.Lock()
	if h.closed {
		h.pendingMu.Unlock()
		return nil, ErrHostClosed
	}
	h.pending[msg.Id] = ch
	h.pendingMu.Unlock()

	h.send(msg)

	select {
	case reply, ok := <-ch:
		if !ok {
			return nil, ErrHostClosed
		}
		return reply, nil
	case <-ctx.Done():
		h.pendingMu.Lock()
		delete(h.pending, msg.Id)
		h.pendingMu.Unlock()
		return nil, ctx.Err()
	}
}

func (h *StreamHost) Ready(serviceUrl string) {
	h.send(&dto.HostMessage{Type: dto.HostMsgReady, Url: serviceUrl})
}

func (h *StreamHost) ShowInfo(msg string) {
	h.send(&dto.HostMessage{Type: dto.HostMsgInfo, Message: msg})
}

func (h *StreamHost) ShowError(msg string) {
	h.send(&dto.HostMessage{Type: dto.HostMsgError, Message: msg})
}

func (h *StreamHost) OpenDocument(uri string) {
	h.send(&dto.HostMessage{Type: dto.HostMsgOpen, Uri: uri})
}

func (h *StreamHost) RefreshDocument(uri string) {
	h.send(&dto.HostMessage{Type: dto.HostMsgRefresh, Uri: uri})
}

func (h *StreamHost) Prompt(ctx context.Context, prompt, placeholder, value string) (string, bool, error) {
	reply, err := h.request(ctx, &dto.HostMessage{
		Type:        dto.HostMsgPrompt,
		Prompt:      prompt,
		Placeholder: placeholder,
		Value:       value,
	})
	if err != nil {
		return "", false, err
	}
	if reply.Cancelled {
		return "", false, nil
	}
	return reply.Value, true, nil
}

func (h *StreamHost) Choose(ctx context.Context, message string, options ...string) (string, error) {
	reply, err := h.request(ctx, &dto.HostMessage{
		Type:    dto.HostMsgChoose,
		Message: message,
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if reply.Cancelled {
		return "", nil
	}
	return reply.Value, nil
}
