package fieldset

import "strings"

// Option configures an expansion before it runs.
type Option func(*config)

type config struct {
	placeholder string
	exclude     map[string]struct{}
	readonly    map[string]struct{}
}

func newConfig(options ...Option) config {
	cfg := config{placeholder: DefaultPlaceholder}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithPlaceholder overrides the sentinel token. Blank tokens are ignored.
func WithPlaceholder(token string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			return
		}
		cfg.placeholder = trimmed
	}
}

// WithExclude removes names from the remaining pool. Fields listed
// explicitly in a fieldset are kept even when excluded here.
func WithExclude(names ...string) Option {
	return func(cfg *config) {
		cfg.exclude = appendSet(cfg.exclude, names)
	}
}

// WithReadonly removes read-only names from the remaining pool.
func WithReadonly(names ...string) Option {
	return func(cfg *config) {
		cfg.readonly = appendSet(cfg.readonly, names)
	}
}

func appendSet(dest map[string]struct{}, names []string) map[string]struct{} {
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if dest == nil {
			dest = make(map[string]struct{}, len(names))
		}
		dest[trimmed] = struct{}{}
	}
	return dest
}
