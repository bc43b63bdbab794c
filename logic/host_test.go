package logic_test

import (
	"bufio"
	"context"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"io"
	"testing"
	"time"
	"twitter_webview/dto"
	"twitter_webview/logic"
	"twitter_webview/shared"
	"twitter_webview/test/mocks"
)

type hostScaffold struct {
	host     *logic.StreamHost
	settings shared.ISettings
	toHost   *io.PipeWriter
	fromSvc  *bufio.Scanner
}

func newHostScaffold(t *testing.T, ctrl *gomock.Controller) *hostScaffold {
	logger := mocks.NewMockILogger(ctrl)
	stubLogger(logger)
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	settings := shared.NewSettings(&shared.Config{})
	res := hostScaffold{
		host:     logic.NewStreamHost(inR, outW, logger, settings),
		settings: settings,
		toHost:   inW,
		fromSvc:  bufio.NewScanner(outR),
	}
	go res.host.Listen()
	t.Cleanup(func() {
		inW.Close()
		outR.Close()
	})
	return &res
}

func (sc *hostScaffold) next(t *testing.T) *dto.HostMessage {
	if !assert.True(t, sc.fromSvc.Scan()) {
		return nil
	}
	var msg dto.HostMessage
	assert.Nil(t, json.Unmarshal(sc.fromSvc.Bytes(), &msg))
	return &msg
}

func (sc *hostScaffold) reply(t *testing.T, reply dto.HostReply) {
	line, err := json.Marshal(reply)
	assert.Nil(t, err)
	_, err = sc.toHost.Write(append(line, '\n'))
	assert.Nil(t, err)
}

func TestHostNotificationsAreJsonLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newHostScaffold(t, ctrl)

	go func() {
		sc.host.Ready("http://127.0.0.1:4567")
		sc.host.OpenDocument("twitter://timeline/home")
		sc.host.ShowError("Failed to like: offline")
	}()

	msg := sc.next(t)
	assert.Equal(t, dto.HostMsgReady, msg.Type)
	assert.Equal(t, "http://127.0.0.1:4567", msg.Url)
	msg = sc.next(t)
	assert.Equal(t, dto.HostMsgOpen, msg.Type)
	assert.Equal(t, "twitter://timeline/home", msg.Uri)
	msg = sc.next(t)
	assert.Equal(t, dto.HostMsgError, msg.Type)
	assert.Equal(t, "Failed to like: offline", msg.Message)
}

func TestPromptWaitsForMatchingReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newHostScaffold(t, ctrl)

	type result struct {
		value string
		ok    bool
		err   error
	}
	done := make(chan result)
	go func() {
		value, ok, err := sc.host.Prompt(context.Background(), "Reply to @bob", "", "@bob ")
		done <- result{value, ok, err}
	}()

	msg := sc.next(t)
	assert.Equal(t, dto.HostMsgPrompt, msg.Type)
	assert.Equal(t, "@bob ", msg.Value)
	assert.NotEqual(t, "", msg.Id)

	// Replies to unknown requests and garbage lines are ignored
	sc.reply(t, dto.HostReply{Type: dto.HostMsgReply, Id: "someone-else", Value: "nope"})
	_, _ = sc.toHost.Write([]byte("not json\n"))
	sc.reply(t, dto.HostReply{Type: dto.HostMsgReply, Id: msg.Id, Value: "@bob yes"})

	res := <-done
	assert.Nil(t, res.err)
	assert.True(t, res.ok)
	assert.Equal(t, "@bob yes", res.value)
}

func TestChooseCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newHostScaffold(t, ctrl)

	done := make(chan string)
	go func() {
		choice, err := sc.host.Choose(context.Background(), "Retweet or comment?", "Retweet", "Comment")
		assert.Nil(t, err)
		done <- choice
	}()

	msg := sc.next(t)
	assert.Equal(t, dto.HostMsgChoose, msg.Type)
	assert.Equal(t, []string{"Retweet", "Comment"}, msg.Options)
	sc.reply(t, dto.HostReply{Type: dto.HostMsgReply, Id: msg.Id, Cancelled: true})
	assert.Equal(t, "", <-done)
}

func TestPromptGivesUpWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newHostScaffold(t, ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	go func() {
		for sc.fromSvc.Scan() {
		}
	}()
	_, ok, err := sc.host.Prompt(ctx, "Anything?", "", "")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSettingsMessageUpdatesSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newHostScaffold(t, ctrl)

	on := true
	sc.reply(t, dto.HostReply{Type: dto.HostMsgSettings, NoMedia: &on})
	assert.Eventually(t, sc.settings.NoMedia, time.Second, 5*time.Millisecond)
	assert.False(t, sc.settings.AutoPlay())

	sc.reply(t, dto.HostReply{Type: dto.HostMsgSettings, AutoPlay: &on})
	assert.Eventually(t, sc.settings.AutoPlay, time.Second, 5*time.Millisecond)
}

func TestClosedInputReleasesPendingPrompts(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newHostScaffold(t, ctrl)

	done := make(chan error)
	go func() {
		_, ok, err := sc.host.Prompt(context.Background(), "Reply to @bob", "", "@bob ")
		assert.False(t, ok)
		done <- err
	}()
	msg := sc.next(t)
	assert.Equal(t, dto.HostMsgPrompt, msg.Type)

	assert.Nil(t, sc.toHost.Close())
	select {
	case err := <-done:
		assert.ErrorIs(t, err, logic.ErrHostClosed)
	case <-time.After(time.Second):
		t.Fatal("prompt still waiting after host input closed")
	}

	// Nothing can answer anymore, so new requests fail without being sent
	_, err := sc.host.Choose(context.Background(), "Retweet or comment?", "Retweet", "Comment")
	assert.ErrorIs(t, err, logic.ErrHostClosed)
}
