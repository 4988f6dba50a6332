package iftable

import (
	"context"

	"hostpulse/internal/domain"
)

type Enumerator struct {
	call Caller
}

func NewEnumerator(call Caller) *Enumerator {
	return &Enumerator{call: call}
}

func (e *Enumerator) rows(ctx context.Context) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf, err := Read(e.call)
	if err != nil {
		return nil, err
	}

	return Parse(buf)
}

// List returns (index, name) pairs in the order the OS reports them.
func (e *Enumerator) List(ctx context.Context) ([]domain.NetInterface, error) {
	rows, err := e.rows(ctx)
	if err != nil {
		return []domain.NetInterface{}, err
	}

	out := make([]domain.NetInterface, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.NetInterface{Index: r.Index, Name: r.Name})
	}

	return out, nil
}

// StatsFor re-reads the whole table since there is no per-index query.
func (e *Enumerator) StatsFor(ctx context.Context, index uint32) (domain.InterfaceCounters, error) {
	rows, err := e.rows(ctx)
	if err != nil {
		return domain.InterfaceCounters{}, err
	}

	for _, r := range rows {
		if r.Index == index {
			return domain.InterfaceCounters{
				BytesIn:  uint64(r.InOctets),
				BytesOut: uint64(r.OutOctets),
			}, nil
		}
	}

	return domain.InterfaceCounters{}, domain.ErrInterfaceNotFound
}
