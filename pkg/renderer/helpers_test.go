package renderer

import (
	"fmt"
	"math"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// constSampler returns the same value for every draw
type constSampler struct {
	value float64
}

func (s constSampler) Get1D() float64 { return s.value }
func (s constSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.value, s.value)
}
func (s constSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.value, s.value, s.value)
}

// recordingLogger keeps every formatted line
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
