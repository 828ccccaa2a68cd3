package stream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/sync/errgroup"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client        mqtt.Client
	topic         string
	qos           byte
	frameInterval time.Duration
	cycleInterval time.Duration

	mu         sync.Mutex
	controller *Controller
	start      time.Time
}

// NewStreamer creates an instance of a Streamer. A zero cycleInterval never
// cycles animations.
func NewStreamer(client mqtt.Client, topic string, qos byte, controller *Controller,
	frameInterval, cycleInterval time.Duration) *Streamer {

	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.qos = qos
	s.controller = controller
	s.frameInterval = frameInterval
	s.cycleInterval = cycleInterval
	s.start = time.Now()

	return s
}

// SendFrame sends the frame at runtimeMs as binary over MQTT to an ledrx
// device.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	s.mu.Lock()
	f := s.controller.CalculateFrame(runtimeMs)
	s.mu.Unlock()

	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing frame to %s: %w", s.topic, err)
	}
	return nil
}

// Cycle moves the controller on to its next animation.
func (s *Streamer) Cycle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller.Cycle()
}

// Run causes the Streamer to send Frames continuously and to cycle
// animations until ctx is done. Failed publishes are logged and retried with
// the next frame; frames that cannot be encoded stop the Streamer.
func (s *Streamer) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		publishTimer := time.NewTicker(s.frameInterval)
		defer publishTimer.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-publishTimer.C:
				err := s.SendFrame(now.Sub(s.start).Milliseconds())
				if errors.Is(err, ErrFrameTooLarge) {
					return err
				} else if err != nil {
					log.Printf("Failed to send frame: %v", err)
				}
			}
		}
	})

	if s.cycleInterval > 0 {
		g.Go(func() error {
			cycleTimer := time.NewTicker(s.cycleInterval)
			defer cycleTimer.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-cycleTimer.C:
					s.Cycle()
				}
			}
		})
	}

	return g.Wait()
}

// Status describes what a Streamer is showing.
type Status struct {
	Animation     string `json:"animation"`
	Transitioning bool   `json:"transitioning"`
	RuntimeMs     int64  `json:"runtimeMs"`
	Topic         string `json:"topic"`
}

// Status returns what the Streamer is currently showing.
func (s *Streamer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Animation:     s.controller.Current(),
		Transitioning: s.controller.Transitioning(),
		RuntimeMs:     time.Since(s.start).Milliseconds(),
		Topic:         s.topic,
	}
}
