package cryptomkt

import (
	"time"

	"cryptomkt/pkg/core"
)

// dateLayout is the format the trades endpoint expects for start and end.
const dateLayout = "2006-01-02"

// Option adjusts the optional parameters of a single call.
type Option func(*Options)

// Options holds the optional parameters; nil means the caller did not supply it.
type Options struct {
	Page  *int
	Limit *int
	Start *string
	End   *string
}

func WithPage(page int) Option {
	return func(o *Options) {
		o.Page = &page
	}
}

func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = &limit
	}
}

func WithStart(start string) Option {
	return func(o *Options) {
		o.Start = &start
	}
}

func WithEnd(end string) Option {
	return func(o *Options) {
		o.End = &end
	}
}

// WithTimeRange sets start and end as dates. A zero time leaves its bound unset.
func WithTimeRange(start, end time.Time) Option {
	return func(o *Options) {
		if !start.IsZero() {
			s := start.Format(dateLayout)
			o.Start = &s
		}
		if !end.IsZero() {
			e := end.Format(dateLayout)
			o.End = &e
		}
	}
}

func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// apply copies the supplied options into params.
func (o *Options) apply(params core.Params) core.Params {
	if o.Page != nil {
		params["page"] = *o.Page
	}
	if o.Limit != nil {
		params["limit"] = *o.Limit
	}
	if o.Start != nil {
		params["start"] = *o.Start
	}
	if o.End != nil {
		params["end"] = *o.End
	}
	return params
}
