package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func TestClockMeasuresSinceStart(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	c := &Clock{now: ft.now}

	c.Update()
	assert.Zero(t, c.Elapsed(), "non-started clock must not advance")

	c.Start()
	ft.t = ft.t.Add(1500 * time.Millisecond)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)
	assert.InDelta(t, float32(1.5), c.ElapsedSeconds(), 1e-6)
}

func TestClockStopKeepsElapsed(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := &Clock{now: ft.now}
	c.Start()
	ft.t = ft.t.Add(2 * time.Second)
	c.Update()
	c.Stop()

	ft.t = ft.t.Add(10 * time.Second)
	c.Update()
	assert.InDelta(t, 2.0, c.Elapsed(), 1e-9)

	c.Start()
	assert.Zero(t, c.Elapsed())
}
