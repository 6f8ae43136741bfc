package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velas/vlxaddress/packages/address"
	"github.com/velas/vlxaddress/packages/metrics"
	"github.com/velas/vlxaddress/packages/webapi"
)

func newTestAPI(t *testing.T) *API {
	server := httptest.NewServer(webapi.NewServer(logger.NewExampleLogger("client"), metrics.NewConversions()))
	t.Cleanup(server.Close)

	return NewAPI(server.URL)
}

func TestEthToVlx(t *testing.T) {
	api := newTestAPI(t)

	res, err := api.EthToVlx("0xffffffffffffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Equal(t, "VQLbz7JHiBTspS962RLKV8GndWFwdcRndD", res.Vlx)
	assert.Equal(t, "0xffffffffffffffffffffffffffffffffffffffff", res.Eth)
}

func TestVlxToEth(t *testing.T) {
	api := newTestAPI(t)

	res, err := api.VlxToEth("V5dJeCa7bmkqmZF53TqjRbnB4fG6hxuu4f")
	require.NoError(t, err)
	assert.Equal(t, "0x32be343b94f860124dc4fee278fdcbd38c102d88", res.Eth)
}

func TestConversionErrors(t *testing.T) {
	api := newTestAPI(t)

	_, err := api.VlxToEth("V5dJeCa7bmkqmZF53TqjRbnB4fG6hxuu4g")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
	assert.True(t, errors.Is(err, address.ErrChecksumMismatch))

	_, err = api.VlxToEth("V5dJeCa7bmkqmZF53TqjRbnB4fG6hxuu40")
	assert.True(t, errors.Is(err, address.ErrInvalidCharacter))

	_, err = api.EthToVlx("0x1234")
	assert.True(t, errors.Is(err, address.ErrInvalidLength))
	assert.False(t, errors.Is(err, address.ErrInvalidFormat))
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)

	// the server only reports healthy while it is run by webapi.Server.Run
	assert.True(t, errors.Is(api.Healthz(), ErrServiceUnavailable))
}

func TestNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewAPI(server.URL).EthToVlx("0x32Be343B94f860124dC4fEe278FDCBD38C102D88")
	assert.True(t, errors.Is(err, ErrNotFound))
}
