package uowmock

import (
	"context"

	"wayfarer-backend/internal/domain/uow"
)

// UoW runs the transaction body against whatever repos the test wires in.
// Set Err to simulate a rolled-back transaction.
type UoW struct {
	Repos uow.Repos
	Err   error
	Calls int
}

func (m *UoW) WithinTx(_ context.Context, fn func(r uow.Repos) error) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(m.Repos)
}
