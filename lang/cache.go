package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// globalCache stores parsed programs keyed by the xxh3 hash of their
// source text.
var globalCache sync.Map

// entry is the cached parse of one source. Source is kept to detect hash
// collisions.
type entry struct {
	once   sync.Once
	source string
	prog   *Program
	err    error
}

// ParseReader reads all of r and parses it. Results are cached by content:
// parsing identical text again returns the same *Program, which must be
// treated as immutable.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Program, error) {
	// Wrap reader with async read-ahead so that reading overlaps with
	// hashing and parsing of previous input.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return ParseCached(ctx, string(data), opts...)
}

// ParseCached is like [Parse] but consults the parse cache first.
func ParseCached(
	ctx context.Context,
	src string,
	opts ...Option,
) (*Program, error) {
	cfg := makeConfig(opts...)

	hash := xxh3.HashString(src)
	value, hit := globalCache.LoadOrStore(hash, &entry{source: src})

	cached, ok := value.(*entry)
	if !ok {
		return Parse(ctx, src, opts...)
	}

	cfg.logger.TraceContext(ctx, "cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit))

	if cached.source != src {
		cfg.logger.TraceContext(ctx, "cache collision",
			slog.String("source_hash", strconv.FormatUint(hash, 16)))

		return Parse(ctx, src, opts...)
	}

	cached.once.Do(func() {
		cached.prog, cached.err = Parse(ctx, src, opts...)
	})

	// A cancellation is not a property of the source; retry next time.
	if cached.err != nil && ctx.Err() != nil {
		globalCache.CompareAndDelete(hash, cached)
	}

	return cached.prog, cached.err
}

// ClearCache removes all cached programs.
func ClearCache() {
	globalCache.Clear()
}
