package client

import (
	"net/http"
	"net/url"

	"github.com/velas/vlxaddress/packages/jsonmodels"
)

const (
	routeEthToVlx = "address/ethToVlx/"
	routeVlxToEth = "address/vlxToEth/"
	routeHealthz  = "healthz"
)

// EthToVlx converts a hex address into its encoded form.
func (api *API) EthToVlx(eth string) (*jsonmodels.ConversionResponse, error) {
	res := &jsonmodels.ConversionResponse{}
	if err := api.do(http.MethodGet, routeEthToVlx+url.PathEscape(eth), nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

// VlxToEth converts an encoded address into its hex form.
func (api *API) VlxToEth(vlx string) (*jsonmodels.ConversionResponse, error) {
	res := &jsonmodels.ConversionResponse{}
	if err := api.do(http.MethodGet, routeVlxToEth+url.PathEscape(vlx), nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Healthz returns nil if the web API is up and healthy.
func (api *API) Healthz() error {
	return api.do(http.MethodGet, routeHealthz, nil, nil)
}
