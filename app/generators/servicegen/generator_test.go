package servicegen

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/artisan/app/generators/scaffold"
	"github.com/jrazmi/artisan/app/generators/stubs"
	"github.com/jrazmi/artisan/sdk/logger"
)

func newTestGenerator(t *testing.T) (*Generator, billy.Filesystem) {
	t.Helper()
	fsys := memfs.New()
	log := logger.NewDiscard()
	return New(log, scaffold.New(log, fsys, stubs.NewStore(nil), scaffold.DefaultConfig())), fsys
}

func TestExecute(t *testing.T) {
	g, fsys := newTestGenerator(t)

	res, err := g.Execute(context.Background(), "Payments")
	require.NoError(t, err)
	assert.Equal(t, "Service [Payments] created successfully.", res.Message)
	assert.Equal(t, "app/infrastructures/services/payment.go", res.Path)

	data, err := util.ReadFile(fsys, res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package services")
	assert.Contains(t, string(data), "type PaymentService struct")
	assert.Contains(t, string(data), "into app/infrastructures/services.")

	res, err = g.Execute(context.Background(), "Payments")
	require.ErrorIs(t, err, scaffold.ErrAlreadyExists)
	assert.Equal(t, "Service [Payments] already exist.", res.Message)
}

func TestExecuteInterface(t *testing.T) {
	g, fsys := newTestGenerator(t)

	res, err := g.ExecuteInterface(context.Background(), "Payment")
	require.NoError(t, err)
	assert.Equal(t, "Service Interface [PaymentInterface] created successfully.", res.Message)
	assert.Equal(t, "app/infrastructures/services/interfaces/payment_interface.go", res.Path)

	data, err := util.ReadFile(fsys, res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package interfaces")
	assert.Contains(t, string(data), "type PaymentInterface interface")

	_, err = g.ExecuteInterface(context.Background(), "Payment")
	require.ErrorIs(t, err, scaffold.ErrAlreadyExists)
}

func TestExecuteInvalidName(t *testing.T) {
	g, _ := newTestGenerator(t)

	_, err := g.Execute(context.Background(), "Billing/")
	require.ErrorIs(t, err, scaffold.ErrInvalidName)

	_, err = g.ExecuteInterface(context.Background(), "")
	require.ErrorIs(t, err, scaffold.ErrInvalidName)
}
