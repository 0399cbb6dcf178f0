// Package reference issues human-facing booking references of the form
// PBR<base36 millisecond timestamp>, e.g. PBRMDQ3V8K1.
package reference

import (
	"context"
	"strconv"
	"strings"
	"time"
)

const prefix = "PBR"

type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock is for tests that need deterministic references.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

func (g *Generator) NextRef(_ context.Context) (string, error) {
	ms := g.now().UnixMilli()

	return prefix + strings.ToUpper(strconv.FormatInt(ms, 36)), nil
}
