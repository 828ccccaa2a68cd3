package stream

// An Animation implements a way to render a specific animation.
// runtimeMs is the time since the streamer started; animations measure their
// own progress from the first frame they are asked for.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}
