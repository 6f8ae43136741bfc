package webapi

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/velas/vlxaddress/packages/address"
	"github.com/velas/vlxaddress/packages/jsonmodels"
	"github.com/velas/vlxaddress/packages/metrics"
)

// ethToVlx is the handler for /address/ethToVlx/:address.
func (s *Server) ethToVlx(c echo.Context) error {
	eth := c.Param("address")

	payload, err := address.PayloadFromHex(eth)
	s.conversions.Observe(metrics.DirectionEthToVlx, err)
	if err != nil {
		s.log.Debugf("failed to convert %s: %s", eth, err)
		return c.JSON(http.StatusBadRequest, jsonmodels.NewErrorResponse(err))
	}

	return c.JSON(http.StatusOK, jsonmodels.NewConversionResponse(payload.String(), payload.Vlx()))
}

// vlxToEth is the handler for /address/vlxToEth/:address.
func (s *Server) vlxToEth(c echo.Context) error {
	vlx := c.Param("address")

	eth, err := address.VlxToEth(vlx)
	s.conversions.Observe(metrics.DirectionVlxToEth, err)
	if err != nil {
		s.log.Debugf("failed to convert %s: %s", vlx, err)
		return c.JSON(http.StatusBadRequest, jsonmodels.NewErrorResponse(err))
	}

	return c.JSON(http.StatusOK, jsonmodels.NewConversionResponse(eth, vlx))
}
