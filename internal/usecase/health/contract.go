package health

import "context"

// DBPinger checks document store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CachePinger checks cache backend availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
