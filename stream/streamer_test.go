package stream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/easing"
)

type fakeToken struct {
	mqtt.Token
	err error
}

func (t *fakeToken) Wait() bool   { return true }
func (t *fakeToken) Error() error { return t.err }

type message struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeClient records what is published to it.
type fakeClient struct {
	mqtt.Client
	mu        sync.Mutex
	err       error
	messages  []message
	published chan struct{}
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	c.messages = append(c.messages, message{topic, qos, payload.([]byte)})
	c.mu.Unlock()
	if c.published != nil {
		select {
		case c.published <- struct{}{}:
		default:
		}
	}
	return &fakeToken{err: c.err}
}

func (c *fakeClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

func testStreamer(t *testing.T, client mqtt.Client, cycle time.Duration) *Streamer {
	t.Helper()
	_, _, animations := twoSolids()
	c, err := NewController(animations, time.Second, easing.Linear)
	if err != nil {
		t.Fatal(err)
	}
	return NewStreamer(client, "test/stream", 1, c, time.Millisecond, cycle)
}

func TestSendFrame(t *testing.T) {
	client := &fakeClient{}
	s := testStreamer(t, client, 0)

	if err := s.SendFrame(0); err != nil {
		t.Fatalf("SendFrame failed: %v", err)
	}
	if len(client.messages) != 1 {
		t.Fatalf("published %d messages, want 1", len(client.messages))
	}
	m := client.messages[0]
	if m.topic != "test/stream" || m.qos != 1 {
		t.Errorf("published to %s with qos %d", m.topic, m.qos)
	}
	expected := []byte{3, 0, 255, 0, 0, 255, 0, 0, 255, 0, 0}
	if string(m.payload) != string(expected) {
		t.Errorf("payload = %v, want %v", m.payload, expected)
	}
}

func TestSendFrameReportsPublishErrors(t *testing.T) {
	failure := errors.New("broker gone")
	s := testStreamer(t, &fakeClient{err: failure}, 0)
	if err := s.SendFrame(0); !errors.Is(err, failure) {
		t.Errorf("SendFrame error = %v, want %v", err, failure)
	}
}

func TestStreamerStatus(t *testing.T) {
	s := testStreamer(t, &fakeClient{}, 0)
	status := s.Status()
	if status.Animation != "red" || status.Transitioning || status.Topic != "test/stream" {
		t.Errorf("Status() = %+v", status)
	}

	s.Cycle()
	status = s.Status()
	if status.Animation != "blue" || !status.Transitioning {
		t.Errorf("Status() after Cycle = %+v", status)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	client := &fakeClient{published: make(chan struct{}, 1), err: errors.New("ignored")}
	s := testStreamer(t, client, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	for i := 0; i < 3; i++ {
		select {
		case <-client.published:
		case <-time.After(5 * time.Second):
			t.Fatal("no frame published")
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
	if client.count() < 3 {
		t.Errorf("published %d frames, want at least 3", client.count())
	}
}

func TestRunStopsOnOversizedFrames(t *testing.T) {
	c, err := NewController([]NamedAnimation{{"huge", &solid{pixels: 1 << 17}}}, 0, easing.Linear)
	if err != nil {
		t.Fatal(err)
	}
	s := NewStreamer(&fakeClient{}, "test/stream", 0, c, time.Millisecond, 0)

	select {
	case err := <-runAsync(s):
		if !errors.Is(err, ErrFrameTooLarge) {
			t.Errorf("Run returned %v, want ErrFrameTooLarge", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func runAsync(s *Streamer) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()
	return done
}
