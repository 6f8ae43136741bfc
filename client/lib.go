// Package client implements a very simple wrapper for the address conversion web API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/velas/vlxaddress/packages/jsonmodels"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrServiceUnavailable defines the "service unavailable" error.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
)

const (
	contentTypeJSON = "application/json"
)

// NewAPI returns a new *API with the given baseURL and httpClient.
func NewAPI(baseURL string, httpClient ...http.Client) *API {
	if len(httpClient) > 0 {
		return &API{baseURL: baseURL, httpClient: httpClient[0]}
	}
	return &API{baseURL: baseURL}
}

// API is an API wrapper over the address conversion web API.
type API struct {
	httpClient http.Client
	baseURL    string
}

// interpretBody decodes a successful response into decodeTo. Failed conversions are returned as errors that match
// ErrBadRequest and the corresponding address package error.
func interpretBody(res *http.Response, decodeTo interface{}) error {
	defer res.Body.Close()

	resBody, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Errorf("unable to read response body: %w", err)
	}

	if res.StatusCode == http.StatusOK {
		if decodeTo == nil {
			return nil
		}
		return json.Unmarshal(resBody, decodeTo)
	}

	errRes := &jsonmodels.ErrorResponse{}
	if err := json.Unmarshal(resBody, errRes); err != nil {
		// not every error (e.g. from a proxy) carries a JSON body
		errRes.Error = string(bytes.TrimSpace(resBody))
	}

	switch res.StatusCode {
	case http.StatusInternalServerError:
		return errors.Errorf("%w: %s", ErrInternalServerError, errRes.Error)
	case http.StatusNotFound:
		return errors.Errorf("%w: %s", ErrNotFound, res.Request.URL.String())
	case http.StatusServiceUnavailable:
		return errors.Errorf("%w: %s", ErrServiceUnavailable, res.Request.URL.String())
	case http.StatusBadRequest:
		err := errors.Errorf("%w: %s", ErrBadRequest, errRes.Error)
		if kindErr := errRes.Kind.Err(); kindErr != nil {
			err = errors.Mark(err, kindErr)
		}
		return err
	}

	return errors.Errorf("%w: %s", ErrUnknownError, errRes.Error)
}

func (api *API) do(method string, route string, reqObj interface{}, resObj interface{}) error {
	// marshal request object
	var data []byte
	if reqObj != nil {
		var err error
		data, err = json.Marshal(reqObj)
		if err != nil {
			return err
		}
	}

	// construct request
	req, err := http.NewRequest(method, fmt.Sprintf("%s/%s", api.baseURL, route), func() io.Reader {
		if data == nil {
			return nil
		}
		return bytes.NewReader(data)
	}())
	if err != nil {
		return err
	}

	if data != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	// make the request
	res, err := api.httpClient.Do(req)
	if err != nil {
		return err
	}

	// write response into response object
	return interpretBody(res, resObj)
}

// BaseURL returns the baseURL of the API.
func (api *API) BaseURL() string {
	return api.baseURL
}
