package lang

import (
	"context"
	"reflect"

	"github.com/ardnew/jan/log"
)

// tracing reports whether trace records are written, so that hot paths can
// skip building attributes.
func (c config) tracing(ctx context.Context) bool {
	return c.logger.Enabled(ctx, log.LevelTrace)
}

func resultTypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}
