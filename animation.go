package trellis

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Layer simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenAlpha, TweenRotation) and either call Update(dt) each frame or hand it
// to Interface.Animate. If the target layer is destroyed, the group stops
// immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Layer
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and marks the layer dirty. If the target layer has been destroyed,
// Done is set to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDestroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

func newTweenGroup(l *Layer, duration float32, fn ease.TweenFunc, pairs ...tweenField) *TweenGroup {
	g := &TweenGroup{count: len(pairs), target: l}
	for i, p := range pairs {
		g.tweens[i] = gween.New(float32(*p.field), float32(p.to), duration, fn)
		g.fields[i] = p.field
	}
	return g
}

type tweenField struct {
	field *float64
	to    float64
}

// TweenPosition animates l.X and l.Y to (toX, toY).
func TweenPosition(l *Layer, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(l, duration, fn, tweenField{&l.X, toX}, tweenField{&l.Y, toY})
}

// TweenScale animates l.ScaleX and l.ScaleY to (toSX, toSY).
func TweenScale(l *Layer, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(l, duration, fn, tweenField{&l.ScaleX, toSX}, tweenField{&l.ScaleY, toSY})
}

// TweenAlpha animates l.Alpha, fading the layer and its subtree.
func TweenAlpha(l *Layer, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(l, duration, fn, tweenField{&l.Alpha, to})
}

// TweenRotation animates l.Rotation, in radians.
func TweenRotation(l *Layer, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(l, duration, fn, tweenField{&l.Rotation, to})
}
