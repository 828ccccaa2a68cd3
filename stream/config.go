package stream

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/keyframe"
	"github.com/matt-g-everett/ledtween/tween"
	"gopkg.in/yaml.v2"
)

// ErrConfig is wrapped by every error caused by an invalid config.
var ErrConfig = errors.New("stream: invalid config")

// Defaults for settings missing from the config file.
const (
	DefaultPixels            = 500
	DefaultFrameRate         = 30.0
	DefaultTransitionSeconds = 5.0
	DefaultStreamTopic       = "home/xmastree/stream"
	DefaultQos               = 2
)

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Qos      *byte  `yaml:"qos"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	HTTP struct {
		Listen string `yaml:"listen"`
		Static string `yaml:"static"`
	} `yaml:"http"`
	Pixels            int               `yaml:"pixels"`
	FrameRate         float64           `yaml:"frameRate"`
	CycleSeconds      float64           `yaml:"cycleSeconds"`
	TransitionSeconds *float64          `yaml:"transitionSeconds"`
	TransitionEasing  string            `yaml:"transitionEasing"`
	Seed              int64             `yaml:"seed"`
	Animations        []AnimationConfig `yaml:"animations"`
}

// AnimationConfig describes one animation. Type selects which of the other
// fields are used: "sequence" (the default) plays Keyframes, "gradientTrail"
// rotates Gradient along the strip and "twinkle" sparkles Foreground over
// Background.
type AnimationConfig struct {
	Name      string           `yaml:"name"`
	Type      string           `yaml:"type"`
	Blend     string           `yaml:"blend"`
	Loop      string           `yaml:"loop"`
	Spread    float64          `yaml:"spread"`
	Keyframes []KeyframeConfig `yaml:"keyframes"`

	Gradient    []GradientStop `yaml:"gradient"`
	TrailLength int            `yaml:"trailLength"`
	Luminance   float64        `yaml:"luminance"`
	Speed       float64        `yaml:"speed"`

	Particles     int     `yaml:"particles"`
	Foreground    string  `yaml:"foreground"`
	Background    string  `yaml:"background"`
	PeriodSeconds float64 `yaml:"periodSeconds"`
}

// KeyframeConfig is a colour reached at Time seconds. Easing is any curve
// accepted by easing.Parse and shapes the way to the next keyframe.
type KeyframeConfig struct {
	Colour string  `yaml:"colour"`
	Time   float64 `yaml:"time"`
	Easing string  `yaml:"easing"`
}

// ReadConfig decodes a YAML config and fills in defaults. An empty config
// is valid.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledtween"
	}
	if c.Mqtt.Qos == nil {
		qos := byte(DefaultQos)
		c.Mqtt.Qos = &qos
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = DefaultStreamTopic
	}
	if c.Pixels <= 0 {
		c.Pixels = DefaultPixels
	}
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.TransitionSeconds == nil {
		t := DefaultTransitionSeconds
		c.TransitionSeconds = &t
	}
}

// FrameInterval returns the time between two frames.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FrameRate)
}

// CycleInterval returns the time each animation is shown for, or 0 to never
// cycle.
func (c Config) CycleInterval() time.Duration {
	return seconds(c.CycleSeconds)
}

// NewController builds the configured animations. Without any a single
// rainbow trail is shown. A zero seed draws random animations from the clock.
func (c Config) NewController() (*Controller, error) {
	fn, err := easing.Parse(c.TransitionEasing)
	if err != nil {
		return nil, fmt.Errorf("%w: transitionEasing: %w", ErrConfig, err)
	}

	configs := c.Animations
	if len(configs) == 0 {
		configs = []AnimationConfig{{Name: "rainbow", Type: "gradientTrail"}}
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	animations := make([]NamedAnimation, 0, len(configs))
	for i, ac := range configs {
		a, err := ac.Build(c.Pixels, rng)
		if err != nil {
			return nil, fmt.Errorf("animation %d (%s): %w", i, ac.Name, err)
		}
		name := ac.Name
		if name == "" {
			name = fmt.Sprintf("animation %d", i)
		}
		animations = append(animations, NamedAnimation{Name: name, Animation: a})
	}

	transition := 0.0
	if c.TransitionSeconds != nil {
		transition = *c.TransitionSeconds
	}
	return NewController(animations, seconds(transition), fn)
}

// Build creates the animation for a strip of numPixels pixels.
func (a AnimationConfig) Build(numPixels int, rng *rand.Rand) (Animation, error) {
	switch strings.ToLower(a.Type) {
	case "", "sequence":
		return a.buildSequence(numPixels)
	case "gradienttrail":
		return a.buildGradientTrail(numPixels), nil
	case "twinkle":
		return a.buildTwinkle(numPixels, rng)
	}
	return nil, fmt.Errorf("%w: unknown animation type %q", ErrConfig, a.Type)
}

func (a AnimationConfig) buildSequence(numPixels int) (Animation, error) {
	blend, err := ParseBlend(a.Blend)
	if err != nil {
		return nil, err
	}
	looping, err := ParseLooping(a.Loop)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if len(a.Keyframes) == 0 {
		return nil, fmt.Errorf("%w: sequence has no keyframes", ErrConfig)
	}

	colours := keyframe.NewSequence(blend)
	for i, kc := range a.Keyframes {
		k, err := kc.keyframe()
		if err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
		if err := colours.Insert(k); err != nil {
			return nil, fmt.Errorf("%w: keyframe %d: %w", ErrConfig, i, err)
		}
	}

	return NewSequenceAnimation(colours, numPixels, looping, a.Spread), nil
}

func (a AnimationConfig) buildGradientTrail(numPixels int) Animation {
	gradient := RainbowGradient()
	if len(a.Gradient) > 0 {
		gradient = NewGradientTable(a.Gradient...)
	}

	trailLength := a.TrailLength
	if trailLength <= 0 {
		trailLength = 200
	}
	luminance := a.Luminance
	if luminance <= 0 {
		luminance = 0.05
	}
	speed := a.Speed
	if speed == 0 {
		speed = 60
	}
	return NewGradientTrail(gradient, numPixels, trailLength, luminance, speed)
}

func (a AnimationConfig) buildTwinkle(numPixels int, rng *rand.Rand) (Animation, error) {
	fore, err := parseColour(a.Foreground, "#404040")
	if err != nil {
		return nil, err
	}
	back, err := parseColour(a.Background, "#000005")
	if err != nil {
		return nil, err
	}

	particles := a.Particles
	if particles <= 0 {
		particles = 60
	}
	period := a.PeriodSeconds
	if period <= 0 {
		period = 2
	}
	return NewTwinkle(numPixels, particles, fore, back, period, rng), nil
}

func (kc KeyframeConfig) keyframe() (keyframe.Keyframe[colorful.Color], error) {
	c, err := parseColour(kc.Colour, "")
	if err != nil {
		return keyframe.Keyframe[colorful.Color]{}, err
	}
	fn, err := easing.Parse(kc.Easing)
	if err != nil {
		return keyframe.Keyframe[colorful.Color]{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return keyframe.New(c, kc.Time, fn), nil
}

// ParseBlend returns the colour blend for a colour space name. The default
// is hcl.
func ParseBlend(name string) (tween.BlendFunc[colorful.Color], error) {
	switch strings.ToLower(name) {
	case "", "hcl":
		return tween.ColorHcl, nil
	case "rgb":
		return tween.ColorRGB, nil
	case "lab":
		return tween.ColorLab, nil
	case "luv":
		return tween.ColorLuv, nil
	case "hsv":
		return tween.ColorHsv, nil
	}
	return nil, fmt.Errorf("%w: unknown blend %q", ErrConfig, name)
}

func parseColour(hex, fallback string) (colorful.Color, error) {
	if hex == "" {
		hex = fallback
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return c, fmt.Errorf("%w: colour %q: %w", ErrConfig, hex, err)
	}
	return c, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
